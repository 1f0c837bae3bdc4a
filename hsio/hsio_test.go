// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package hsio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/go-heatshrink/heatshrink"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	var compressed bytes.Buffer

	w, err := NewWriter(&compressed, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	payload := bytes.Repeat([]byte("round trip through io adapters "), 500)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&compressed, heatshrink.DefaultInputBufferSize, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatal("round trip through hsio.Writer/hsio.Reader did not reproduce the input")
	}
}

func TestWriterReader_RoundTripInSmallReads(t *testing.T) {
	var compressed bytes.Buffer

	w, err := NewWriter(&compressed, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	payload := bytes.Repeat([]byte("small read buffer exercise "), 300)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&compressed, heatshrink.DefaultInputBufferSize, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	var out []byte
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}

	if !bytes.Equal(out, payload) {
		t.Fatal("small-buffer reads did not reproduce the input")
	}
}

func TestWriter_CloseIsNotIdempotent(t *testing.T) {
	var compressed bytes.Buffer

	w, err := NewWriter(&compressed, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); !errors.Is(err, heatshrink.ErrInvalidState) {
		t.Fatalf("second Close = %v, want ErrInvalidState", err)
	}
}

func TestWriter_WriteAfterCloseIsRejected(t *testing.T) {
	var compressed bytes.Buffer

	w, err := NewWriter(&compressed, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := w.Write([]byte("too late")); !errors.Is(err, heatshrink.ErrInvalidState) {
		t.Fatalf("Write after Close = %v, want ErrInvalidState", err)
	}
}

func TestReader_EmptySourceProducesEmptyOutput(t *testing.T) {
	r, err := NewReader(bytes.NewReader(nil), heatshrink.DefaultInputBufferSize, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("ReadAll(empty source) = %v, want empty", out)
	}
}
