// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Encode is a one-shot convenience wrapper: it compresses data with a fresh
// Writer, driven to completion by a Coder.
func Encode(data []byte, windowSz2, lookaheadSz2 uint8) ([]byte, error) {
	w, err := NewWriter(windowSz2, lookaheadSz2)
	if err != nil {
		return nil, err
	}
	return runToCompletion(w, data)
}

// Decode is a one-shot convenience wrapper: it decompresses data with a
// fresh Reader, driven to completion by a Coder.
func Decode(data []byte, inputBufferSize int, windowSz2, lookaheadSz2 uint8) ([]byte, error) {
	r, err := NewReader(inputBufferSize, windowSz2, lookaheadSz2)
	if err != nil {
		return nil, err
	}
	return runToCompletion(r, data)
}

func runToCompletion(m Machine, data []byte) ([]byte, error) {
	c := NewCoder(m)

	out, err := c.Fill(data)
	if err != nil {
		return nil, err
	}

	tail, err := c.Finish()
	if err != nil {
		return nil, err
	}

	return append(out, tail...), nil
}
