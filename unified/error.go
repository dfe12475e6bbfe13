// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding indicates that the string or its raw encoding is
	// malformed: bad checksum, bad padding, truncated or trailing item
	// data, non-canonical CompactSize values or a standard receiver with
	// the wrong payload length.
	ErrInvalidEncoding ErrorCode = iota

	// ErrNotUnified indicates the string is Bech32 rather than Bech32m
	// and therefore cannot be a unified address.
	ErrNotUnified

	// ErrInvalidTypecode indicates a typecode that does not fit in 32
	// bits.
	ErrInvalidTypecode

	// ErrDuplicateTypecode indicates two items share a typecode.
	ErrDuplicateTypecode

	// ErrBothP2PKHAndP2SH indicates the container holds both transparent
	// receiver kinds, which the format forbids.
	ErrBothP2PKHAndP2SH

	// ErrOnlyTransparent indicates the container holds no receiver other
	// than transparent ones.  An empty container is reported this way as
	// well.
	ErrOnlyTransparent

	// ErrInvalidHRP indicates a human-readable part too long to fit in
	// the 16 byte padding block.
	ErrInvalidHRP
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidEncoding:   "ErrInvalidEncoding",
	ErrNotUnified:        "ErrNotUnified",
	ErrInvalidTypecode:   "ErrInvalidTypecode",
	ErrDuplicateTypecode: "ErrDuplicateTypecode",
	ErrBothP2PKHAndP2SH:  "ErrBothP2PKHAndP2SH",
	ErrOnlyTransparent:   "ErrOnlyTransparent",
	ErrInvalidHRP:        "ErrInvalidHRP",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so a code can be used as an
// errors.Is target.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error provides a single type for errors that can happen while building,
// encoding or decoding a unified address.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of this error.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// unifiedError creates an Error given a set of arguments.
func unifiedError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
