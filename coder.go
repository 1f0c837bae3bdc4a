// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "fmt"

// Machine is the sink/poll/finish protocol shared by Writer and Reader.
// Coder drives either one uniformly through it (spec §4.3).
type Machine interface {
	Sink(p []byte) (full bool, sunk int, err error)
	Poll(outBufSize int) (more bool, out []byte, err error)
	Finish() bool
}

// Coder is a high-level driver that repeatedly sinks input and drains output
// from a Machine (a *Writer or *Reader) until a Finish terminator is
// observed. It is the Go counterpart of heatshrinkpy's Encoder façade.
type Coder struct {
	machine  Machine
	finished bool
}

// NewCoder wraps m in a Coder. m should be a freshly constructed *Writer or
// *Reader; Coder does not call Reset on it.
func NewCoder(m Machine) *Coder {
	return &Coder{machine: m}
}

// Finished reports whether Finish has already been called successfully.
func (c *Coder) Finished() bool {
	return c.finished
}

// Fill pushes buf through the underlying machine, draining output after each
// sink, and returns all compressed/decompressed bytes produced.
//
// buf must be a []byte or a []int whose values are all in [0, 255]. Any
// other type, including string and bool, is rejected with
// ErrUnsupportedType; an int outside [0, 255] is rejected with
// ErrInvalidArgument.
func (c *Coder) Fill(buf any) ([]byte, error) {
	if c.finished {
		return nil, fmt.Errorf("%w: cannot fill a finished coder", ErrInvalidState)
	}

	data, err := toBytes(buf)
	if err != nil {
		return nil, err
	}

	var out []byte
	for len(data) > 0 {
		_, sunk, err := c.machine.Sink(data)
		if err != nil {
			return nil, err
		}
		data = data[sunk:]

		drained, err := c.drain()
		if err != nil {
			return nil, err
		}
		out = append(out, drained...)
	}

	return out, nil
}

// Finish closes the coder, returning any remaining output. It is an error
// to call Fill or Finish again afterward.
func (c *Coder) Finish() ([]byte, error) {
	if c.finished {
		return nil, fmt.Errorf("%w: cannot finish a finished coder", ErrInvalidState)
	}

	var out []byte
	for {
		if c.machine.Finish() {
			c.finished = true
			break
		}

		drained, err := c.drain()
		if err != nil {
			return nil, err
		}
		out = append(out, drained...)
	}

	return out, nil
}

// drain invokes Poll until the machine reports no more output available
// right now.
func (c *Coder) drain() ([]byte, error) {
	var out []byte
	for {
		more, buf, err := c.machine.Poll(0)
		if err != nil {
			return nil, err
		}
		out = append(out, buf...)
		if !more {
			return out, nil
		}
	}
}

// toBytes converts buf to a byte slice, rejecting text-only and
// scalar-boolean inputs per spec §4.3 / §8 property 8.
func toBytes(buf any) ([]byte, error) {
	switch v := buf.(type) {
	case string, bool:
		return nil, fmt.Errorf("%w: cannot fill with type %T", ErrUnsupportedType, v)
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case []int:
		return intsToBytes(v)
	default:
		return nil, fmt.Errorf("%w: cannot fill with type %T", ErrUnsupportedType, v)
	}
}

func intsToBytes(v []int) ([]byte, error) {
	out := make([]byte, len(v))
	for i, n := range v {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("%w: value %d out of byte range", ErrInvalidArgument, n)
		}
		out[i] = byte(n)
	}
	return out, nil
}
