// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Heatshrink parameter defaults and bounds. Values must be reproduced
// verbatim: they determine the bit widths baked into the wire format, so
// changing them breaks compatibility with existing compressed payloads.
const (
	// DefaultWindowSz2 is the default base-2 log of the sliding-window size.
	DefaultWindowSz2 = 11
	// DefaultLookaheadSz2 is the default base-2 log of the max back-reference length.
	DefaultLookaheadSz2 = 4
	// DefaultInputBufferSize is the default decoder input staging ring capacity.
	DefaultInputBufferSize = 256
)

// Parameter bounds enforced by NewWriter/NewReader.
const (
	MinWindowSz2    = 4
	MaxWindowSz2    = 15
	MinLookaheadSz2 = 3
)
