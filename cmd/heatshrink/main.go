// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

// Command heatshrink compresses and decompresses files with the Heatshrink
// LZSS variant. It is thin glue around package heatshrink (spec §1 places
// CLI parsing out of core scope): all of the work happens in
// heatshrink.Encode/heatshrink.Decode.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-heatshrink/heatshrink"
)

func main() {
	log.SetFlags(0)

	windowSz2 := flag.Int("window-sz2", heatshrink.DefaultWindowSz2, "base-2 log of the LZSS sliding window size")
	lookaheadSz2 := flag.Int("lookahead-sz2", heatshrink.DefaultLookaheadSz2, "base-2 log of the max back-reference length")
	inputBufferSize := flag.Int("input-buffer-size", heatshrink.DefaultInputBufferSize, "decoder input staging buffer size")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(2)
	}

	subcommand, infile, outfile := args[0], args[1], args[2]

	in, err := os.ReadFile(infile)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	var out []byte
	switch subcommand {
	case "compress":
		out, err = heatshrink.Encode(in, uint8(*windowSz2), uint8(*lookaheadSz2))
	case "decompress":
		out, err = heatshrink.Decode(in, *inputBufferSize, uint8(*windowSz2), uint8(*lookaheadSz2))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if err := os.WriteFile(outfile, out, 0o644); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] compress|decompress infile outfile\n", os.Args[0])
	flag.PrintDefaults()
}
