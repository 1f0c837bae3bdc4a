// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("heatshrink benchmark text payload "), 140),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func benchmarkParamSets() [][2]uint8 {
	return [][2]uint8{{8, 4}, {DefaultWindowSz2, DefaultLookaheadSz2}, {13, 6}}
}

func BenchmarkEncode(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, p := range benchmarkParamSets() {
			name := fmt.Sprintf("%s/w%d-l%d", inputName, p[0], p[1])
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Encode(inputData, p[0], p[1]); err != nil {
						b.Fatalf("Encode failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, p := range benchmarkParamSets() {
			compressed, err := Encode(inputData, p[0], p[1])
			if err != nil {
				b.Fatalf("setup Encode failed for %s w%d-l%d: %v", inputName, p[0], p[1], err)
			}

			name := fmt.Sprintf("%s/w%d-l%d", inputName, p[0], p[1])
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Decode(compressed, DefaultInputBufferSize, p[0], p[1]); err != nil {
						b.Fatalf("Decode failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Encode(inputData, DefaultWindowSz2, DefaultLookaheadSz2)
		if err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
		if _, err := Decode(compressed, DefaultInputBufferSize, DefaultWindowSz2, DefaultLookaheadSz2); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
