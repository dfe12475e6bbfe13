// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import "fmt"

// ErrorCode identifies why a unified address could not be interpreted as a
// traceable address.  Every code is terminal: the same input always fails
// the same way.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrP2pkhReceiverNotFound indicates the address carries no
	// transparent key hash item.
	ErrP2pkhReceiverNotFound ErrorCode = iota

	// ErrReceiverLengthInvalid indicates the key hash item is not 20
	// bytes long.
	ErrReceiverLengthInvalid

	// ErrExpiryHeightInvalid indicates the expiry height item is not a
	// 4 byte little-endian integer.
	ErrExpiryHeightInvalid

	// ErrExpiryTimeInvalid indicates the expiry time item is not an 8
	// byte little-endian integer.
	ErrExpiryTimeInvalid
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrP2pkhReceiverNotFound: "ErrP2pkhReceiverNotFound",
	ErrReceiverLengthInvalid: "ErrReceiverLengthInvalid",
	ErrExpiryHeightInvalid:   "ErrExpiryHeightInvalid",
	ErrExpiryTimeInvalid:     "ErrExpiryTimeInvalid",
}

// errorDescriptions holds the fixed explanation reported for each code.
var errorDescriptions = map[ErrorCode]string{
	ErrP2pkhReceiverNotFound: "no P2PKH receiver found",
	ErrReceiverLengthInvalid: "receiver length invalid for typecode 0x04: " +
		"must be 20 bytes",
	ErrExpiryHeightInvalid: "expiry height invalid: the value of typecode " +
		"0xE0 must be a 4-byte integer in little-endian order",
	ErrExpiryTimeInvalid: "expiry time invalid: the value of typecode " +
		"0xE1 must be an 8-byte integer in little-endian order",
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

// Error is returned when the receivers of a unified address do not form a
// valid traceable address.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is the ErrorCode of this error.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// traceableError creates an Error carrying the fixed description of c.
func traceableError(c ErrorCode) Error {
	return Error{ErrorCode: c, Description: errorDescriptions[c]}
}
