// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "fmt"

// decoderState is one node of the decoder's seven-state machine (spec §4.1).
type decoderState int

const (
	stateTagBit decoderState = iota
	stateDecYieldLiteral
	stateBackrefIndexMSB
	stateBackrefIndexLSB
	stateBackrefCountMSB
	stateBackrefCountLSB
	stateYieldBackref
)

// Reader is the Heatshrink decoder: a seven-state machine that consumes a
// bit-packed LZSS stream via Sink and reconstructs plaintext via Poll.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	windowSz2    uint8
	lookaheadSz2 uint8
	windowSize   int // W = 1 << windowSz2

	inputBufferSize int
	inputBuffer     []byte
	inputSize       int
	inputIndex      int

	windowBuffer []byte
	headIndex    uint64

	state       decoderState
	currentByte byte
	bitIndex    byte

	outputIndex int
	outputCount int

	oi *outputSink
}

// NewReader constructs a decoder for the given input staging capacity and
// the window/lookahead sizes the stream was encoded with.
func NewReader(inputBufferSize int, windowSz2, lookaheadSz2 uint8) (*Reader, error) {
	if err := validateInputBufferSize(inputBufferSize); err != nil {
		return nil, err
	}
	if err := validateWindowSz2(windowSz2); err != nil {
		return nil, err
	}
	if err := validateLookaheadSz2(lookaheadSz2, windowSz2); err != nil {
		return nil, err
	}

	r := &Reader{
		windowSz2:       windowSz2,
		lookaheadSz2:    lookaheadSz2,
		windowSize:      1 << windowSz2,
		inputBufferSize: inputBufferSize,
	}
	r.Reset()
	return r, nil
}

// MaxOutputSize returns W, the largest number of plaintext bytes a single
// Poll call can usefully be asked to produce.
func (r *Reader) MaxOutputSize() int {
	return r.windowSize
}

// Reset brings the decoder back to its initial, empty state.
func (r *Reader) Reset() {
	r.inputBuffer = make([]byte, r.inputBufferSize)
	r.windowBuffer = make([]byte, r.windowSize)
	r.state = stateTagBit
	r.inputSize = 0
	r.inputIndex = 0
	r.bitIndex = 0x00
	r.currentByte = 0x00
	r.outputCount = 0
	r.outputIndex = 0
	r.headIndex = 0
}

// Sink copies up to len(p) bytes into the decoder's input staging ring. Per
// spec §9, the staging area is drain-then-refill rather than a genuine ring:
// sink is only ever called once the previous contents are fully consumed, so
// new bytes always land starting at offset inputSize.
func (r *Reader) Sink(p []byte) (full bool, sunk int, err error) {
	rem := r.inputBufferSize - r.inputSize
	if rem == 0 {
		return true, 0, nil
	}

	size := len(p)
	if size > rem {
		size = rem
	}

	copy(r.inputBuffer[r.inputSize:r.inputSize+size], p[:size])
	r.inputSize += size

	return false, size, nil
}

// Poll drives the state machine, returning up to outBufSize plaintext bytes
// (MaxOutputSize is used when outBufSize <= 0). more reports whether the
// output buffer was filled and another Poll call may produce more.
func (r *Reader) Poll(outBufSize int) (more bool, out []byte, err error) {
	if outBufSize <= 0 {
		outBufSize = r.MaxOutputSize()
	}
	r.oi = newOutputSink(outBufSize)
	defer func() { r.oi = nil }()

	for {
		inState := r.state

		next, stepErr := r.step(r.state)
		if stepErr != nil {
			return false, nil, stepErr
		}
		r.state = next

		if r.state == inState {
			return r.oi.full(), r.oi.bytes(), nil
		}
	}
}

// Finish reports whether decoding is complete. It is lenient by design
// (spec §9): it returns true whenever the input staging ring is empty and
// the decoder is not mid-back-reference, tolerating trailing padding bits
// rather than treating a truncated stream as an error.
func (r *Reader) Finish() bool {
	if r.state == stateYieldBackref {
		return false
	}
	return r.inputSize == 0
}

func (r *Reader) step(s decoderState) (decoderState, error) {
	switch s {
	case stateTagBit:
		return r.tagBit(), nil
	case stateDecYieldLiteral:
		return r.yieldLiteral(), nil
	case stateBackrefIndexMSB:
		return r.backrefIndexMSB(), nil
	case stateBackrefIndexLSB:
		return r.backrefIndexLSB(), nil
	case stateBackrefCountMSB:
		return r.backrefCountMSB(), nil
	case stateBackrefCountLSB:
		return r.backrefCountLSB(), nil
	case stateYieldBackref:
		return r.yieldBackref(), nil
	default:
		return s, fmt.Errorf("%w: decoder reached unhandled state %d", ErrInternal, s)
	}
}

func (r *Reader) tagBit() decoderState {
	bits, ok := r.getBits(1)
	if !ok {
		return stateTagBit
	}
	if bits != 0 {
		return stateDecYieldLiteral
	}
	if r.windowSz2 > 8 {
		return stateBackrefIndexMSB
	}
	r.outputIndex = 0
	return stateBackrefIndexLSB
}

func (r *Reader) yieldLiteral() decoderState {
	if r.oi.full() {
		return stateDecYieldLiteral
	}

	b, ok := r.getBits(8)
	if !ok {
		return stateDecYieldLiteral
	}

	mask := uint64(r.windowSize - 1)
	c := byte(b)
	r.windowBuffer[r.headIndex&mask] = c
	r.headIndex++
	r.oi.push(c)
	return stateTagBit
}

func (r *Reader) backrefIndexMSB() decoderState {
	bits, ok := r.getBits(int(r.windowSz2) - 8)
	if !ok {
		return stateBackrefIndexMSB
	}
	r.outputIndex = bits << 8
	return stateBackrefIndexLSB
}

func (r *Reader) backrefIndexLSB() decoderState {
	n := int(r.windowSz2)
	if n > 8 {
		n = 8
	}
	bits, ok := r.getBits(n)
	if !ok {
		return stateBackrefIndexLSB
	}
	r.outputIndex |= bits
	r.outputIndex++
	r.outputCount = 0
	if r.lookaheadSz2 > 8 {
		return stateBackrefCountMSB
	}
	return stateBackrefCountLSB
}

func (r *Reader) backrefCountMSB() decoderState {
	bits, ok := r.getBits(int(r.lookaheadSz2) - 8)
	if !ok {
		return stateBackrefCountMSB
	}
	r.outputCount = bits << 8
	return stateBackrefCountLSB
}

func (r *Reader) backrefCountLSB() decoderState {
	n := int(r.lookaheadSz2)
	if n > 8 {
		n = 8
	}
	bits, ok := r.getBits(n)
	if !ok {
		return stateBackrefCountLSB
	}
	r.outputCount |= bits
	r.outputCount++
	return stateYieldBackref
}

func (r *Reader) yieldBackref() decoderState {
	count := len(r.oi.buf) - r.oi.size
	if count <= 0 {
		return stateYieldBackref
	}
	if count > r.outputCount {
		count = r.outputCount
	}

	mask := uint64(r.windowSize - 1)
	negOffset := uint64(r.outputIndex)

	for i := 0; i < count; i++ {
		c := r.windowBuffer[(r.headIndex-negOffset)&mask]
		r.oi.push(c)
		r.windowBuffer[r.headIndex&mask] = c
		r.headIndex++
	}

	r.outputCount -= count
	if r.outputCount == 0 {
		return stateTagBit
	}
	return stateYieldBackref
}

// getBits extracts up to 15 bits MSB-first from the input ring. ok is false
// when fewer than count bits are currently available; the caller should
// retry once more input has been sunk.
func (r *Reader) getBits(count int) (value int, ok bool) {
	if count > 15 {
		return 0, false
	}

	if r.inputSize == 0 && int(r.bitIndex) < (1<<uint(count-1)) {
		return 0, false
	}

	accumulator := 0
	for i := 0; i < count; i++ {
		if r.bitIndex == 0x00 {
			if r.inputSize == 0 {
				return 0, false
			}
			r.currentByte = r.inputBuffer[r.inputIndex]
			r.inputIndex++
			if r.inputIndex == r.inputSize {
				r.inputIndex = 0
				r.inputSize = 0
			}
			r.bitIndex = 0x80
		}

		accumulator <<= 1
		if r.currentByte&r.bitIndex != 0 {
			accumulator |= 0x01
		}
		r.bitIndex >>= 1
	}

	return accumulator, true
}
