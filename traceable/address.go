// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/zcashaddr"
)

// KeyHashLen is the size of a transparent payment key hash.
const KeyHashLen = zcashaddr.TransparentLen

// Address is a transparent payment key hash together with optional expiry
// metadata.  Values are immutable; the With methods return modified copies.
type Address struct {
	net          netparams.Net
	keyHash      [KeyHashLen]byte
	expiryHeight fn.Option[uint32]
	expiryTime   fn.Option[uint64]
}

// NewAddress returns a traceable address for keyHash without any expiry.
func NewAddress(net netparams.Net, keyHash [KeyHashLen]byte) Address {
	return Address{
		net:          net,
		keyHash:      keyHash,
		expiryHeight: fn.None[uint32](),
		expiryTime:   fn.None[uint64](),
	}
}

// NewAddressFromPubKey returns a traceable address paying to the hash of a
// serialized secp256k1 public key.  The key is hashed in the serialization
// it was given, so compressed and uncompressed keys yield different
// addresses.
func NewAddressFromPubKey(net netparams.Net,
	serializedPubKey []byte) (Address, error) {

	if _, err := btcec.ParsePubKey(serializedPubKey); err != nil {
		return Address{}, fmt.Errorf("invalid public key: %w", err)
	}

	var keyHash [KeyHashLen]byte
	copy(keyHash[:], btcutil.Hash160(serializedPubKey))
	return NewAddress(net, keyHash), nil
}

// Net returns the network of the address.
func (a Address) Net() netparams.Net {
	return a.net
}

// KeyHash returns the transparent payment key hash.
func (a Address) KeyHash() [KeyHashLen]byte {
	return a.keyHash
}

// ExpiryHeight returns the block height after which a payment to the
// address is invalid, if one is set.
func (a Address) ExpiryHeight() fn.Option[uint32] {
	return a.expiryHeight
}

// ExpiryTime returns the Unix time in seconds after which a payment to the
// address is invalid, if one is set.
func (a Address) ExpiryTime() fn.Option[uint64] {
	return a.expiryTime
}

// WithExpiryHeight returns a copy of the address with its expiry height set.
func (a Address) WithExpiryHeight(height uint32) Address {
	a.expiryHeight = fn.Some(height)
	return a
}

// WithExpiryTime returns a copy of the address with its expiry time set.
func (a Address) WithExpiryTime(epochTime uint64) Address {
	a.expiryTime = fn.Some(epochTime)
	return a
}

// WithoutExpiry returns a copy of the address with both expiry fields
// cleared.
func (a Address) WithoutExpiry() Address {
	return NewAddress(a.net, a.keyHash)
}
