// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// outputSink is a fixed-capacity byte buffer collecting bytes emitted during
// a single Poll call. A fresh sink is created per Poll and discarded once
// that call returns.
type outputSink struct {
	buf  []byte
	size int
}

func newOutputSink(capacity int) *outputSink {
	return &outputSink{buf: make([]byte, capacity)}
}

// full reports whether the sink has no remaining room.
func (s *outputSink) full() bool {
	return s.size >= len(s.buf)
}

// push appends one byte. Callers must check full() first.
func (s *outputSink) push(b byte) {
	s.buf[s.size] = b
	s.size++
}

// bytes returns the bytes collected so far, as a fresh slice.
func (s *outputSink) bytes() []byte {
	out := make([]byte, s.size)
	copy(out, s.buf[:s.size])
	return out
}
