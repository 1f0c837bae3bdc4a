// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriter_SinkRejectsAfterFinish(t *testing.T) {
	w, err := NewWriter(DefaultWindowSz2, DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if _, _, err := w.Sink([]byte("abc")); err != nil {
		t.Fatalf("Sink: %v", err)
	}
	w.Finish()

	if _, _, err := w.Sink([]byte("xyz")); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Sink after Finish = %v, want ErrInvalidState", err)
	}
}

func TestWriter_SinkRejectsWhileFilled(t *testing.T) {
	w, err := NewWriter(MinWindowSz2, MinLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	full := bytes.Repeat([]byte{1}, w.MaxOutputSize())
	if _, _, err := w.Sink(full); err != nil {
		t.Fatalf("Sink: %v", err)
	}
	if w.state != stateFilled {
		t.Fatalf("state = %v, want stateFilled", w.state)
	}

	if _, _, err := w.Sink([]byte{1}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Sink while FILLED = %v, want ErrInvalidState", err)
	}
}

func TestWriter_PollReturnsNoProgressWhenNotFull(t *testing.T) {
	w, err := NewWriter(DefaultWindowSz2, DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if _, _, err := w.Sink([]byte("a")); err != nil {
		t.Fatalf("Sink: %v", err)
	}

	more, out, err := w.Poll(0)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if more {
		t.Fatal("Poll reported more output available while NOT_FULL")
	}
	if len(out) != 0 {
		t.Fatalf("Poll output = %v, want empty while NOT_FULL", out)
	}
}

func TestWriter_MaxOutputSizeIsWindowSize(t *testing.T) {
	w, err := NewWriter(9, 4)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if got, want := w.MaxOutputSize(), 1<<9; got != want {
		t.Fatalf("MaxOutputSize = %d, want %d", got, want)
	}
}

func TestWriter_ResetClearsState(t *testing.T) {
	w, err := NewWriter(DefaultWindowSz2, DefaultLookaheadSz2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if _, _, err := w.Sink([]byte("some content")); err != nil {
		t.Fatalf("Sink: %v", err)
	}
	w.Reset()

	if w.state != stateNotFull || w.inputSize != 0 || w.finishing {
		t.Fatalf("Reset left state=%v inputSize=%d finishing=%v", w.state, w.inputSize, w.finishing)
	}
}
