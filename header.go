// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "github.com/nh298/lzw/internal/bitio"

// header is the fixed-layout preamble written once at the start of every
// stream: the maximum code width, the pruning window (0 disables pruning),
// and whether the escape mechanism is in effect. The header occupies the
// first 30 bits of the same bit stream the codes follow on; there is no
// byte-boundary padding between the header and the first code.
type header struct {
	maxBits       uint
	window        uint64
	escapeEnabled bool
}

const (
	maxBitsWidth = 5  // maxBits ranges over [8, 24], comfortably fits 5 bits (0..31)
	windowWidth  = 24 // generous headroom for the pruning window
	escapeWidth  = 1
)

// writeHeader packs h onto bw. The first 24 of the 30 bits are written out
// as whole bytes at once; the last 6 stay pending in bw's accumulator until
// the first code follows.
func writeHeader(bw *bitio.Writer, h header) error {
	if err := bw.PutBits(maxBitsWidth, uint32(h.maxBits)); err != nil {
		return err
	}
	if err := bw.PutBits(windowWidth, uint32(h.window)); err != nil {
		return err
	}
	var esc uint32
	if h.escapeEnabled {
		esc = 1
	}
	return bw.PutBits(escapeWidth, esc)
}

// readHeader parses a header written by writeHeader, leaving br positioned
// at the first code of the stream body.
func readHeader(br *bitio.Reader) (header, error) {
	maxBits, err := br.GetBits(maxBitsWidth)
	if err != nil {
		return header{}, err
	}
	window, err := br.GetBits(windowWidth)
	if err != nil {
		return header{}, err
	}
	escBit, err := br.GetBits(escapeWidth)
	if err != nil {
		return header{}, err
	}
	return header{
		maxBits:       uint(maxBits),
		window:        uint64(window),
		escapeEnabled: escBit != 0,
	}, nil
}
