// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zcashaddr

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidEncoding indicates the string uses a known Zcash prefix
	// but its payload is malformed.  When the failure comes from the
	// unified container, Err holds the unified.Error.
	ErrInvalidEncoding ErrorCode = iota

	// ErrNotZcash indicates the string is not a Zcash address at all.
	ErrNotZcash

	// ErrUnsupported indicates the target type has no conversion for the
	// kind of the parsed address.
	ErrUnsupported

	// ErrIncorrectNetwork indicates the address belongs to a network other
	// than the one requested.
	ErrIncorrectNetwork
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidEncoding:  "ErrInvalidEncoding",
	ErrNotZcash:         "ErrNotZcash",
	ErrUnsupported:      "ErrUnsupported",
	ErrIncorrectNetwork: "ErrIncorrectNetwork",
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

// Error describes why a string could not be parsed as a Zcash address or
// why a parsed address could not be converted to the requested type.
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

// addrError creates an Error given a set of arguments.
func addrError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
