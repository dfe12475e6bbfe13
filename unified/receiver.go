// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"fmt"
)

// Typecode identifies the kind of a receiver within a unified address.
type Typecode uint32

// Typecodes of the standard receiver kinds.  Every other value is carried
// through as an opaque item.
const (
	TypecodeP2PKH   Typecode = 0x00
	TypecodeP2SH    Typecode = 0x01
	TypecodeSapling Typecode = 0x02
	TypecodeOrchard Typecode = 0x03
)

// Payload sizes of the standard receiver kinds.
const (
	TransparentLen = 20
	ShieldedLen    = 43
)

// IsTransparent reports whether the typecode names a transparent receiver.
func (t Typecode) IsTransparent() bool {
	return t == TypecodeP2PKH || t == TypecodeP2SH
}

// String returns a human readable name for the typecode.
func (t Typecode) String() string {
	switch t {
	case TypecodeP2PKH:
		return "P2PKH"
	case TypecodeP2SH:
		return "P2SH"
	case TypecodeSapling:
		return "Sapling"
	case TypecodeOrchard:
		return "Orchard"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint32(t))
	}
}

// payloadLen returns the fixed payload length of a standard typecode.
func (t Typecode) payloadLen() (int, bool) {
	switch t {
	case TypecodeP2PKH, TypecodeP2SH:
		return TransparentLen, true
	case TypecodeSapling, TypecodeOrchard:
		return ShieldedLen, true
	default:
		return 0, false
	}
}

// Receiver is a single typed item of a unified address.
type Receiver struct {
	Typecode Typecode
	Data     []byte
}

// NewP2PKHReceiver returns the standard receiver for a transparent
// pay-to-public-key-hash destination.
func NewP2PKHReceiver(keyHash [TransparentLen]byte) Receiver {
	return Receiver{Typecode: TypecodeP2PKH, Data: keyHash[:]}
}

// Equal reports whether two receivers carry the same typecode and data.
func (r Receiver) Equal(o Receiver) bool {
	return r.Typecode == o.Typecode && bytes.Equal(r.Data, o.Data)
}

// validate checks the payload length of standard receivers.
func (r Receiver) validate() error {
	want, ok := r.Typecode.payloadLen()
	if ok && len(r.Data) != want {
		str := fmt.Sprintf("%v receiver must be %d bytes, got %d",
			r.Typecode, want, len(r.Data))
		return unifiedError(ErrInvalidEncoding, str, nil)
	}
	return nil
}
