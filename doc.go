// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

/*
Package heatshrink implements the Heatshrink variant of LZSS compression: a
pair of streaming state machines (Writer, Reader) parameterized by a
sliding-window size and a back-reference length size. There is no header, no
checksum, and no length prefix — the compressed stream is a raw, bit-packed
sequence of literal and back-reference tokens, ending wherever the producer
says it ends.

# One-shot use

	compressed, err := heatshrink.Encode(data, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)
	plain, err := heatshrink.Decode(compressed, heatshrink.DefaultInputBufferSize, heatshrink.DefaultWindowSz2, heatshrink.DefaultLookaheadSz2)

# Streaming use

Writer and Reader are incremental: push bytes in with Sink, drain bytes out
with Poll, and call Finish once all input has been sunk. Coder automates the
sink/drain/finish cycle for callers who just want to push chunks through:

	w, err := heatshrink.NewWriter(11, 4)
	c := heatshrink.NewCoder(w)
	out, err := c.Fill(chunk)
	tail, err := c.Finish()

Two Writer/Reader instances constructed with identical parameters and fed
the same input produce byte-identical output.
*/
package heatshrink
