// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "fmt"

// encoderState is one node of the encoder's ten-state machine (spec §4.2).
type encoderState int

const (
	stateNotFull encoderState = iota
	stateFilled
	stateSearch
	stateYieldTagBit
	stateYieldLiteral
	stateYieldBRIndex
	stateYieldBRLength
	stateSaveBacklog
	stateFlushBits
	stateDone
)

const (
	literalMarker = 1
	backrefMarker = 0
)

// Writer is the Heatshrink encoder: a ten-state machine that consumes
// plaintext via Sink and emits a bit-packed LZSS stream via Poll.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	windowSz2    uint8
	lookaheadSz2 uint8
	windowSize   int // W = 1 << windowSz2
	lookaheadLen int // L = 1 << lookaheadSz2

	buffer      []byte  // 2W ring: low half backlog, high half active window
	searchIndex []int32 // 2W chained search index, -1 sentinel

	inputSize       int
	matchScanIndex  int
	matchPos        int
	matchLength     int
	outgoingBits    uint32
	outgoingBitsCnt int

	state      encoderState
	currentByte byte
	bitIndex    byte
	finishing   bool

	oi *outputSink
}

// NewWriter constructs an encoder for the given window and lookahead sizes.
// windowSz2 must be in [MinWindowSz2, MaxWindowSz2]; lookaheadSz2 must be in
// [MinLookaheadSz2, windowSz2].
func NewWriter(windowSz2, lookaheadSz2 uint8) (*Writer, error) {
	if err := validateWindowSz2(windowSz2); err != nil {
		return nil, err
	}
	if err := validateLookaheadSz2(lookaheadSz2, windowSz2); err != nil {
		return nil, err
	}

	w := &Writer{
		windowSz2:    windowSz2,
		lookaheadSz2: lookaheadSz2,
		windowSize:   1 << windowSz2,
		lookaheadLen: 1 << lookaheadSz2,
	}
	w.Reset()
	return w, nil
}

// MaxOutputSize returns W, the largest number of compressed bytes a single
// Poll call can usefully be asked to produce.
func (w *Writer) MaxOutputSize() int {
	return w.windowSize
}

// Reset brings the encoder back to its initial, empty state.
func (w *Writer) Reset() {
	w.buffer = make([]byte, 2*w.windowSize)
	w.searchIndex = make([]int32, 2*w.windowSize)
	w.inputSize = 0
	w.state = stateNotFull
	w.matchScanIndex = 0
	w.bitIndex = 0x80
	w.currentByte = 0x00
	w.matchLength = 0
	w.outgoingBits = 0
	w.outgoingBitsCnt = 0
	w.finishing = false
}

// Sink copies up to len(p) bytes into the encoder's input window. It is only
// legal while the encoder is in its NOT_FULL state and not finishing.
func (w *Writer) Sink(p []byte) (full bool, sunk int, err error) {
	if w.finishing {
		return false, 0, fmt.Errorf("%w: cannot sink while finishing", ErrInvalidState)
	}
	if w.state != stateNotFull {
		return false, 0, fmt.Errorf("%w: cannot sink before the current buffer is processed", ErrInvalidState)
	}

	writeOffset := w.windowSize + w.inputSize
	rem := w.windowSize - w.inputSize
	size := len(p)
	if size > rem {
		size = rem
	}

	copy(w.buffer[writeOffset:writeOffset+size], p[:size])
	w.inputSize += size
	if size == rem {
		w.state = stateFilled
	}

	return false, size, nil
}

// Poll drives the state machine, returning up to outBufSize compressed bytes
// (MaxOutputSize is used when outBufSize <= 0). more reports whether another
// Poll call may produce additional output right away.
func (w *Writer) Poll(outBufSize int) (more bool, out []byte, err error) {
	if outBufSize <= 0 {
		outBufSize = w.MaxOutputSize()
	}
	w.oi = newOutputSink(outBufSize)
	defer func() { w.oi = nil }()

	for {
		inState := w.state

		switch w.state {
		case stateNotFull, stateDone:
			return false, w.oi.bytes(), nil
		case stateFlushBits:
			w.state = w.flushBitBuffer()
			return false, w.oi.bytes(), nil
		}

		next, stepErr := w.step(w.state)
		if stepErr != nil {
			return false, nil, stepErr
		}
		w.state = next

		if w.state == inState && w.oi.full() {
			return true, w.oi.bytes(), nil
		}
	}
}

// Finish marks the encoder as finishing. Once the returned value is true the
// encoder has emitted everything and further Sink calls are rejected.
// Finish is idempotent: once done it keeps reporting true.
func (w *Writer) Finish() bool {
	w.finishing = true
	if w.state == stateNotFull {
		w.state = stateFilled
	}
	return w.state == stateDone
}

// step dispatches to the handler for the given state and returns the next
// state, matching spec §4.2's ten-state transition table.
func (w *Writer) step(s encoderState) (encoderState, error) {
	switch s {
	case stateFilled:
		return w.doIndexing(), nil
	case stateSearch:
		return w.stepSearch(), nil
	case stateYieldTagBit:
		return w.yieldTagBit(), nil
	case stateYieldLiteral:
		return w.yieldLiteral(), nil
	case stateYieldBRIndex:
		return w.yieldBRIndex(), nil
	case stateYieldBRLength:
		return w.yieldBRLength(), nil
	case stateSaveBacklog:
		return w.saveBacklog(), nil
	default:
		return s, fmt.Errorf("%w: encoder reached unhandled state %d", ErrInternal, s)
	}
}

// doIndexing rebuilds the chained search index over the live buffer region.
func (w *Writer) doIndexing() encoderState {
	var lastSeen [256]int32
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	end := w.windowSize + w.inputSize
	for i := 0; i < end; i++ {
		v := w.buffer[i]
		w.searchIndex[i] = lastSeen[v]
		lastSeen[v] = int32(i)
	}

	return stateSearch
}

func (w *Writer) stepSearch() encoderState {
	msi := w.matchScanIndex

	limit := w.lookaheadLen
	if w.finishing {
		limit = 1
	}
	if msi > w.inputSize-limit {
		if w.finishing {
			return stateFlushBits
		}
		return stateSaveBacklog
	}

	end := w.windowSize + msi
	start := end - w.windowSize
	maxPossible := w.lookaheadLen
	if w.inputSize-msi < maxPossible {
		maxPossible = w.inputSize - msi
	}

	pos, length, ok := w.findLongestMatch(start, end, maxPossible)
	if !ok {
		w.matchScanIndex++
		w.matchLength = 0
	} else {
		w.matchPos = pos
		w.matchLength = length
	}

	return stateYieldTagBit
}

func (w *Writer) yieldTagBit() encoderState {
	if !w.canTakeByte() {
		return stateYieldTagBit
	}

	if w.matchLength == 0 {
		w.pushBits(1, literalMarker)
		return stateYieldLiteral
	}

	w.pushBits(1, backrefMarker)
	w.outgoingBits = uint32(w.matchPos - 1)
	w.outgoingBitsCnt = int(w.windowSz2)
	return stateYieldBRIndex
}

func (w *Writer) yieldLiteral() encoderState {
	if !w.canTakeByte() {
		return stateYieldLiteral
	}

	// match_scan_index was already advanced in stepSearch, so the literal
	// byte currently being emitted is the one just behind the scan cursor.
	c := w.buffer[w.windowSize+w.matchScanIndex-1]
	w.pushBits(8, uint32(c))
	return stateSearch
}

func (w *Writer) yieldBRIndex() encoderState {
	if !w.canTakeByte() {
		return stateYieldBRIndex
	}
	if w.pushOutgoingBits() > 0 {
		return stateYieldBRIndex
	}

	w.outgoingBits = uint32(w.matchLength - 1)
	w.outgoingBitsCnt = int(w.lookaheadSz2)
	return stateYieldBRLength
}

func (w *Writer) yieldBRLength() encoderState {
	if !w.canTakeByte() {
		return stateYieldBRLength
	}
	if w.pushOutgoingBits() > 0 {
		return stateYieldBRLength
	}

	w.matchScanIndex += w.matchLength
	w.matchLength = 0
	return stateSearch
}

// saveBacklog shifts the buffer left by match_scan_index bytes, preserving
// the backlog half exactly, so that more input can be sunk.
func (w *Writer) saveBacklog() encoderState {
	rem := w.windowSize - w.matchScanIndex
	shiftSz := w.windowSize + rem
	src := w.windowSize - rem

	copy(w.buffer[:shiftSz], w.buffer[src:src+shiftSz])
	w.matchScanIndex = 0
	w.inputSize -= src

	return stateNotFull
}

// flushBitBuffer emits the trailing partial byte, if any, and is handled
// directly in Poll rather than through step/dispatch because it is the one
// state that always terminates the poll loop (spec §4.2 FLUSH_BITS).
func (w *Writer) flushBitBuffer() encoderState {
	if w.bitIndex == 0x80 {
		return stateDone
	}
	if w.canTakeByte() {
		w.oi.push(w.currentByte)
		return stateDone
	}
	return stateFlushBits
}

func (w *Writer) canTakeByte() bool {
	return !w.oi.full()
}

// pushBits writes the low `count` bits of bits (count <= 8) MSB-first into
// the bit accumulator, flushing completed bytes to the output sink.
func (w *Writer) pushBits(count int, bits uint32) {
	if count == 8 && w.bitIndex == 0x80 {
		w.oi.push(byte(bits))
		return
	}

	for i := count - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			w.currentByte |= w.bitIndex
		}
		w.bitIndex >>= 1
		if w.bitIndex == 0x00 {
			w.bitIndex = 0x80
			w.oi.push(w.currentByte)
			w.currentByte = 0x00
		}
	}
}

// pushOutgoingBits peels at most 8 bits off the top of outgoingBits per call.
// It returns the number of bits peeled; 0 means outgoingBits is drained.
func (w *Writer) pushOutgoingBits() int {
	var count int
	var bits uint32

	if w.outgoingBitsCnt > 8 {
		count = 8
		bits = (w.outgoingBits >> uint(w.outgoingBitsCnt-8)) & 0xFF
	} else {
		count = w.outgoingBitsCnt
		bits = w.outgoingBits & 0xFF
	}

	if count > 0 {
		w.pushBits(count, bits)
		w.outgoingBitsCnt -= count
	}

	return count
}
