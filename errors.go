// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "errors"

// Sentinel errors for the encoder, decoder, and coder façade.
var (
	// ErrInvalidArgument is returned when a constructor parameter is out of range,
	// or Coder.Fill is given a []int holding a value outside [0, 255].
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned for a sink/fill/finish call made out of protocol
	// order: sinking after finish, sinking while the encoder is not NOT_FULL, or
	// any operation on a closed Coder.
	ErrInvalidState = errors.New("invalid state")
	// ErrInternal is returned when the state machine reaches a branch the
	// specification says is unreachable. Callers can use errors.Is(err, heatshrink.ErrInternal).
	ErrInternal = errors.New("internal heatshrink error")
	// ErrUnsupportedType is returned when Coder.Fill is given a string, bool, or
	// any other value that is neither a []byte nor a []int.
	ErrUnsupportedType = errors.New("unsupported input type")
)
