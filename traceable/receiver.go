// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import "github.com/nuttycom/zcash-address-wasm/netparams"

// Receiver is the key hash of a traceable address stripped of its expiry
// metadata.  It is the reduced form used by callers that only attach an
// expiry time and never an expiry height.
type Receiver struct {
	net     netparams.Net
	keyHash [KeyHashLen]byte
}

// NewReceiver returns a receiver for keyHash.
func NewReceiver(net netparams.Net, keyHash [KeyHashLen]byte) Receiver {
	return Receiver{net: net, keyHash: keyHash}
}

// ReceiverFromAddress returns the receiver of a, dropping both expiry
// fields.
func ReceiverFromAddress(a Address) Receiver {
	return NewReceiver(a.net, a.keyHash)
}

// ParseReceiver parses s as a traceable address and keeps only its key
// hash.  Malformed expiry items are still rejected.
func ParseReceiver(s string) (Receiver, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return Receiver{}, err
	}
	return ReceiverFromAddress(addr), nil
}

// Net returns the network of the receiver.
func (r Receiver) Net() netparams.Net {
	return r.net
}

// KeyHash returns the transparent payment key hash.
func (r Receiver) KeyHash() [KeyHashLen]byte {
	return r.keyHash
}

// WithExpiryTime returns the traceable address made of the key hash and
// expiryTime.  Its expiry height is always absent.
func (r Receiver) WithExpiryTime(expiryTime uint64) Address {
	return NewAddress(r.net, r.keyHash).WithExpiryTime(expiryTime)
}
