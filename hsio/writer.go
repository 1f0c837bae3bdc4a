// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

// Package hsio adapts the heatshrink coder façade to the standard io.Reader
// and io.WriteCloser interfaces, for callers who want file-like streaming
// instead of driving Sink/Poll/Finish themselves. It is thin glue around
// package heatshrink's core (spec §1 places stream adapters out of core
// scope) and is modeled on the teacher's DecompressFromReader pattern,
// generalized to genuine streaming since Heatshrink's façade (unlike
// LZO1X's whole-block decompressor) supports incremental fill/drain.
package hsio

import (
	"fmt"
	"io"

	"github.com/go-heatshrink/heatshrink"
)

// Writer compresses bytes written to it and forwards the compressed stream
// to an underlying io.Writer. Callers must call Close to flush the final
// partial byte and terminator state.
type Writer struct {
	dst    io.Writer
	coder  *heatshrink.Coder
	closed bool
}

// NewWriter wraps dst, compressing everything written to the returned Writer
// with the given window and lookahead sizes.
func NewWriter(dst io.Writer, windowSz2, lookaheadSz2 uint8) (*Writer, error) {
	w, err := heatshrink.NewWriter(windowSz2, lookaheadSz2)
	if err != nil {
		return nil, err
	}
	return &Writer{dst: dst, coder: heatshrink.NewCoder(w)}, nil
}

// Write compresses p and forwards the compressed bytes to the underlying
// writer. The returned n is len(p) on success, matching io.Writer's contract
// (the compressed byte count differs and is not observable here).
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, fmt.Errorf("%w: write on closed hsio.Writer", heatshrink.ErrInvalidState)
	}

	out, err := w.coder.Fill(p)
	if err != nil {
		return 0, err
	}

	if len(out) > 0 {
		if _, err := w.dst.Write(out); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Close flushes any remaining compressed output and marks the writer
// finished. Close is not idempotent: calling it twice returns
// ErrInvalidState, matching heatshrink.Coder.Finish's own contract.
func (w *Writer) Close() error {
	if w.closed {
		return fmt.Errorf("%w: close on closed hsio.Writer", heatshrink.ErrInvalidState)
	}

	tail, err := w.coder.Finish()
	if err != nil {
		return err
	}
	w.closed = true

	if len(tail) > 0 {
		if _, err := w.dst.Write(tail); err != nil {
			return err
		}
	}

	return nil
}
