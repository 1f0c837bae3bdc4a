// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package hsio

import (
	"bufio"
	"io"

	"github.com/go-heatshrink/heatshrink"
)

// readChunkSize is how many compressed bytes Reader pulls from the
// underlying source per refill, so the whole compressed stream is never
// read into memory at once.
const readChunkSize = 4096

// Reader decompresses bytes read from an underlying io.Reader.
type Reader struct {
	src   *bufio.Reader
	coder *heatshrink.Coder
	buf   []byte
	eof   bool
}

// NewReader wraps src, decompressing everything read from the returned
// Reader with the given input-buffer, window, and lookahead sizes.
func NewReader(src io.Reader, inputBufferSize int, windowSz2, lookaheadSz2 uint8) (*Reader, error) {
	r, err := heatshrink.NewReader(inputBufferSize, windowSz2, lookaheadSz2)
	if err != nil {
		return nil, err
	}
	return &Reader{src: bufio.NewReader(src), coder: heatshrink.NewCoder(r)}, nil
}

// Read decompresses enough of the underlying stream to fill p, or returns
// io.EOF once the source and decoder are both exhausted.
func (r *Reader) Read(p []byte) (n int, err error) {
	for len(r.buf) == 0 {
		if r.eof {
			return 0, io.EOF
		}

		chunk := make([]byte, readChunkSize)
		nr, rerr := r.src.Read(chunk)
		if nr > 0 {
			out, ferr := r.coder.Fill(chunk[:nr])
			if ferr != nil {
				return 0, ferr
			}
			r.buf = append(r.buf, out...)
		}

		if rerr != nil {
			if rerr != io.EOF {
				return 0, rerr
			}

			tail, ferr := r.coder.Finish()
			if ferr != nil {
				return 0, ferr
			}
			r.buf = append(r.buf, tail...)
			r.eof = true
		}
	}

	n = copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
