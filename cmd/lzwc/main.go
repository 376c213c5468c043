// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzwc encodes or decodes a byte stream with the LZW variant
// implemented by this module. It has no protocol logic of its own: it only
// parses flags and wires stdin/stdout to a Writer or Reader.
//
// Usage:
//
//	lzwc encode [-m maxbits] [-p window] [-e]
//	lzwc decode
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nh298/lzw"
)

const (
	defaultMaxBits = 12
	minMaxBits     = 8
	maxMaxBits     = 24
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lzwc encode [-m maxbits] [-p window] [-e]")
	fmt.Fprintln(os.Stderr, "       lzwc decode")
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	maxBits := fs.Int("m", 0, "maximum code width in bits, 8-24 (default 12)")
	window := fs.Int("p", 0, "LRU pruning window in code observations, 0 disables pruning")
	escape := fs.Bool("e", false, "start with an empty dictionary and escape unseen bytes")
	fs.Parse(args)

	mb := *maxBits
	if mb == 0 {
		mb = defaultMaxBits
	} else if mb < minMaxBits || mb > maxMaxBits {
		// Mirrors the historical CLI's leniency: an out-of-range width
		// falls back to the default rather than failing the run.
		mb = defaultMaxBits
	}
	if *window < 0 {
		fmt.Fprintln(os.Stderr, "lzwc: window must be non-negative")
		os.Exit(1)
	}

	zw, err := lzw.NewWriter(os.Stdout, uint(mb), uint64(*window), *escape)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lzwc:", err)
		os.Exit(1)
	}
	if _, err := io.Copy(zw, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "lzwc:", err)
		os.Exit(1)
	}
	if err := zw.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "lzwc:", err)
		os.Exit(1)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Parse(args)

	zr, err := lzw.NewReader(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lzwc: error on decode; invalid encoded stream:", err)
		os.Exit(2)
	}
	if _, err := io.Copy(os.Stdout, zr); err != nil {
		fmt.Fprintln(os.Stderr, "lzwc: error on decode; invalid encoded stream:", err)
		os.Exit(2)
	}
	if err := zr.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "lzwc:", err)
		os.Exit(1)
	}
}
