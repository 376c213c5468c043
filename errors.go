// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "github.com/dsnet/golib/errs"

// Error is the type of all errors returned or panicked by this package that
// represent well-defined failure conditions (as opposed to bugs).
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

// Sentinel errors for two of the three failure categories this package
// distinguishes: a corrupt or protocol-violating stream, and an operation
// attempted on an already-closed Reader/Writer. The third, an invalid
// argument supplied by the caller, has no sentinel; errInvalid builds it.
const (
	ErrCorrupt = Error("stream is corrupted")
	ErrClosed  = Error("stream is closed")
)

// errInvalid reports a caller argument error, e.g. an out-of-range maxBits.
func errInvalid(msg string) error { return Error("invalid argument: " + msg) }

// errRecover is deferred at the top of every exported Reader/Writer method
// that may fail deep inside a helper via errs.Panic, converting that panic
// (or an ordinary runtime panic) into a returned error the same way
// errs.Recover does for the rest of the dsnet/compress family.
func errRecover(err *error) {
	errs.Recover(err)
}
