// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nh298/lzw/internal/bitio"
)

func TestHeaderRoundTrip(t *testing.T) {
	vectors := []header{
		{maxBits: 12, window: 0, escapeEnabled: false},
		{maxBits: 9, window: 64, escapeEnabled: true},
		{maxBits: 24, window: 1<<24 - 1, escapeEnabled: true},
		{maxBits: 8, window: 0, escapeEnabled: false},
	}
	for _, want := range vectors {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		assert.Nil(t, writeHeader(bw, want))
		assert.Nil(t, bw.FlushBits())

		got, err := readHeader(bitio.NewReader(&buf))
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
}

// The header is 30 bits packed MSB-first with no padding: 5 bits of maxBits,
// 24 bits of window, 1 escape bit. maxBits=12 is 01100, so the first byte of
// any such stream is 0110_0000.
func TestHeaderExactBits(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	assert.Nil(t, writeHeader(bw, header{maxBits: 12, window: 0, escapeEnabled: false}))
	assert.Nil(t, bw.FlushBits())
	assert.Equal(t, []byte{0x60, 0x00, 0x00, 0x00}, buf.Bytes())
}
