// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "fmt"

// validateWindowSz2 enforces MinWindowSz2 <= windowSz2 <= MaxWindowSz2.
// The error text matches the upstream Python implementation verbatim, since
// callers (e.g. stream adapters) may match on it for wire-compatible reporting.
func validateWindowSz2(windowSz2 uint8) error {
	if windowSz2 < MinWindowSz2 || windowSz2 > MaxWindowSz2 {
		return fmt.Errorf("%w: window_sz2 must be %d <= number <= %d", ErrInvalidArgument, MinWindowSz2, MaxWindowSz2)
	}
	return nil
}

// validateLookaheadSz2 enforces MinLookaheadSz2 <= lookaheadSz2 <= windowSz2.
func validateLookaheadSz2(lookaheadSz2, windowSz2 uint8) error {
	if lookaheadSz2 < MinLookaheadSz2 || lookaheadSz2 > windowSz2 {
		return fmt.Errorf("%w: lookahead_sz2 must be %d <= number <= %d", ErrInvalidArgument, MinLookaheadSz2, windowSz2)
	}
	return nil
}

// validateInputBufferSize enforces inputBufferSize > 0.
func validateInputBufferSize(inputBufferSize int) error {
	if inputBufferSize <= 0 {
		return fmt.Errorf("%w: input_buffer_size must be > 0", ErrInvalidArgument)
	}
	return nil
}
