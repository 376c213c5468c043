// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/nh298/lzw/internal/bitio"
)

const (
	minMaxBits = 8
	maxMaxBits = 24
	maxWindow  = 1 << 24
)

// Writer is an LZW encoder. It implements io.WriteCloser: callers feed it
// raw bytes via Write and must call Close to emit the terminating control
// code and flush any partially filled trailing byte.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	InputOffset int64

	w   *bitio.Writer
	err error

	maxBits       uint
	window        uint64
	escapeEnabled bool

	dict  *dictionary
	rec   *recencyTracker
	c     code // the pending prefix code; emptyPrefix means "no pending match"
	nbits uint

	closed bool
}

// NewWriter returns a new Writer writing an encoded stream to w. maxBits
// must be within [8, 24] and window must fit in 24 bits (0 disables
// pruning).
func NewWriter(w io.Writer, maxBits uint, window uint64, escapeEnabled bool) (*Writer, error) {
	zw := new(Writer)
	if err := zw.Reset(w, maxBits, window, escapeEnabled); err != nil {
		return nil, err
	}
	return zw, nil
}

// Reset reinitializes zw to write a fresh stream to w with the given
// parameters. All internal state, including the dictionary and bit writer,
// is freshly allocated.
func (zw *Writer) Reset(w io.Writer, maxBits uint, window uint64, escapeEnabled bool) error {
	if maxBits < minMaxBits || maxBits > maxMaxBits {
		return errInvalid("maxBits must be within [8, 24]")
	}
	if window >= maxWindow {
		return errInvalid("window must fit in 24 bits")
	}

	bw := bitio.NewWriter(w)
	hdr := header{maxBits: maxBits, window: window, escapeEnabled: escapeEnabled}
	if err := writeHeader(bw, hdr); err != nil {
		return err
	}

	*zw = Writer{
		w:             bw,
		maxBits:       maxBits,
		window:        window,
		escapeEnabled: escapeEnabled,
		dict:          newDictionary(maxBits, escapeEnabled),
		rec:           newRecencyTracker(1 << maxBits),
		c:             emptyPrefix,
	}
	if escapeEnabled {
		zw.nbits = 2
	} else {
		zw.nbits = 9
	}
	return nil
}

func (zw *Writer) putBits(width uint, c code) {
	if err := zw.w.PutBits(width, uint32(c)); err != nil {
		errs.Panic(err)
	}
}

// checkGrow emits GROW_NBITS_CODE at the current width, the last code sent
// at that width, whenever the dictionary has grown past what nbits can
// address.
func (zw *Writer) checkGrow() {
	if zw.dict.highestCode > code(1)<<zw.nbits-1 {
		zw.putBits(zw.nbits, growNBitsCode)
		zw.nbits++
	}
}

// escapeChar emits the escape sequence for a byte with no dictionary entry
// and inserts it as a new single-byte entry.
func (zw *Writer) escapeChar(k byte) {
	zw.putBits(zw.nbits, escapeCode)
	zw.putBits(8, code(k))

	newCode, _ := zw.dict.add(emptyPrefix, k)
	zw.rec.observe(newCode)

	zw.checkGrow()
}

// checkPrune triggers a dictionary rebuild once the table is full, provided
// pruning is enabled.
func (zw *Writer) checkPrune() {
	if zw.window > 0 && zw.dict.isFull() {
		zw.putBits(zw.nbits, pruneCode)

		zw.dict = zw.dict.prune(zw.rec, zw.window, &zw.c)
		zw.c = emptyPrefix
		zw.nbits = widthFor(zw.dict.highestCode)
	}
}

func widthFor(highestCode code) uint {
	nbits := uint(2)
	for code(1)<<nbits-1 < highestCode {
		nbits++
	}
	return nbits
}

// writeByte runs the main encoder step for a single input byte.
func (zw *Writer) writeByte(k byte) {
	if e, ok := zw.dict.findByPair(zw.c, k); ok {
		zw.c = e
		return
	}

	if zw.c == emptyPrefix {
		zw.escapeChar(k)
		zw.checkPrune()
		return
	}

	zw.putBits(zw.nbits, zw.c)
	zw.rec.observe(zw.c)

	zw.dict.add(zw.c, k)

	zw.checkPrune()
	zw.checkGrow()

	if kCode, ok := zw.dict.findByPair(emptyPrefix, k); ok {
		zw.c = kCode
	} else {
		zw.escapeChar(k)
		zw.c = emptyPrefix
		zw.checkPrune()
	}
}

// Write encodes buf, returning len(buf), nil on success. It never returns a
// short count without an error.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.closed {
		return 0, ErrClosed
	}
	if zw.err != nil {
		return 0, zw.err
	}

	func() {
		defer errRecover(&zw.err)
		for _, k := range buf {
			zw.writeByte(k)
		}
	}()
	if zw.err != nil {
		return 0, zw.err
	}
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close emits the terminating code sequence and flushes any pending bits.
// It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.closed {
		return zw.err
	}
	zw.closed = true
	if zw.err != nil {
		return zw.err
	}

	func() {
		defer errRecover(&zw.err)
		if zw.c != emptyPrefix {
			zw.putBits(zw.nbits, zw.c)
		}
		zw.putBits(zw.nbits, stopCode)
		if err := zw.w.FlushBits(); err != nil {
			errs.Panic(err)
		}
	}()
	return zw.err
}
