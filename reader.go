// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/nh298/lzw/internal/bitio"
	"github.com/nh298/lzw/internal/charstack"
)

// Reader is an LZW decoder. It implements io.ReadCloser.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	OutputOffset int64

	r   *bitio.Reader
	err error

	maxBits       uint
	window        uint64
	escapeEnabled bool

	dict    *dictionary
	rec     *recencyTracker
	oldCode code
	nbits   uint
	finalK  byte
	stack   charstack.Stack

	toRead []byte
	done   bool
	closed bool
}

// NewReader returns a new Reader reading and decoding an LZW stream from r.
// The stream header is parsed immediately.
func NewReader(r io.Reader) (*Reader, error) {
	zr := new(Reader)
	if err := zr.Reset(r); err != nil {
		return nil, err
	}
	return zr, nil
}

// Reset discards any state and reinitializes zr to decode a fresh stream
// from r. All internal state, including the dictionary and bit reader, is
// freshly allocated.
func (zr *Reader) Reset(r io.Reader) error {
	br := bitio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if hdr.maxBits < minMaxBits || hdr.maxBits > maxMaxBits {
		return ErrCorrupt
	}

	*zr = Reader{
		r:             br,
		maxBits:       hdr.maxBits,
		window:        hdr.window,
		escapeEnabled: hdr.escapeEnabled,
		dict:          newDictionary(hdr.maxBits, hdr.escapeEnabled),
		rec:           newRecencyTracker(1 << hdr.maxBits),
		oldCode:       emptyPrefix,
	}
	if hdr.escapeEnabled {
		zr.nbits = 2
	} else {
		zr.nbits = 9
	}
	return nil
}

// getBits reads width raw bits, translating any form of end-of-stream
// (clean or truncated) into ErrCorrupt: every control-code dispatch site
// that calls this expects more of the stream to follow, so running out is
// always a protocol violation, never a clean end.
func (zr *Reader) getBits(width uint) uint32 {
	val, err := zr.r.GetBits(width)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			errs.Panic(ErrCorrupt)
		}
		errs.Panic(err)
	}
	return val
}

// decodeStep reads and dispatches exactly one code, appending any decoded
// output bytes to zr.toRead and setting zr.done on STOP_CODE.
func (zr *Reader) decodeStep() {
	c := code(zr.getBits(zr.nbits))

	switch c {
	case stopCode:
		zr.done = true

	case growNBitsCode:
		zr.nbits++
		if zr.nbits > zr.maxBits {
			errs.Panic(ErrCorrupt)
		}

	case pruneCode:
		if zr.window == 0 {
			errs.Panic(ErrCorrupt)
		}
		zr.dict = zr.dict.prune(zr.rec, zr.window, &zr.oldCode)
		zr.oldCode = emptyPrefix
		zr.nbits = widthFor(zr.dict.highestCode)

	case escapeCode:
		if !zr.escapeEnabled {
			errs.Panic(ErrCorrupt)
		}
		b := byte(zr.getBits(8))
		zr.toRead = append(zr.toRead, b)

		if zr.oldCode != emptyPrefix {
			zr.dict.add(zr.oldCode, b)
		}
		tempCode, _ := zr.dict.add(emptyPrefix, b)
		zr.rec.observe(tempCode)
		zr.oldCode = emptyPrefix

	default:
		zr.decodeDataCode(c)
	}
}

// decodeDataCode handles any code referring to (or about to refer to, in
// the classic LZW self-reference case) a real dictionary entry.
func (zr *Reader) decodeDataCode(newCode code) {
	zr.rec.observe(newCode)

	walk := newCode
	if _, ok := zr.dict.findByCode(walk); !ok {
		zr.stack.Push(zr.finalK)
		walk = zr.oldCode
	}

	elt, ok := zr.dict.findByCode(walk)
	if !ok {
		errs.Panic(ErrCorrupt)
	}
	for elt.prefix != emptyPrefix {
		zr.stack.Push(elt.k)
		walk = elt.prefix
		elt, ok = zr.dict.findByCode(walk)
		if !ok {
			errs.Panic(ErrCorrupt)
		}
	}
	zr.finalK = elt.k

	zr.toRead = append(zr.toRead, zr.finalK)
	for {
		b, ok := zr.stack.Pop()
		if !ok {
			break
		}
		zr.toRead = append(zr.toRead, b)
	}

	if zr.oldCode != emptyPrefix {
		zr.dict.add(zr.oldCode, zr.finalK)
	}
	zr.oldCode = newCode
}

// Read decodes enough of the stream to produce at least one byte (or to
// confirm end of stream), copies as much as fits into buf, and returns the
// rest buffered for the next call.
func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.closed {
		return 0, ErrClosed
	}
	if zr.err != nil {
		return 0, zr.err
	}

	func() {
		defer errRecover(&zr.err)
		for len(zr.toRead) == 0 && !zr.done {
			zr.decodeStep()
		}
	}()
	if zr.err != nil {
		return 0, zr.err
	}
	if len(zr.toRead) == 0 {
		return 0, io.EOF
	}

	n := copy(buf, zr.toRead)
	zr.toRead = zr.toRead[n:]
	zr.OutputOffset += int64(n)
	return n, nil
}

// Close releases zr's resources. It does not close the underlying
// io.Reader.
func (zr *Reader) Close() error {
	if zr.closed {
		return zr.err
	}
	zr.closed = true
	return zr.err
}
