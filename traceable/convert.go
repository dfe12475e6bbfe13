// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import (
	"fmt"

	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/unified"
	"github.com/nuttycom/zcash-address-wasm/zcashaddr"
)

// converter turns parsed unified and transparent P2PKH addresses into
// traceable addresses.  Every other address kind is unsupported.
var converter = &zcashaddr.Converter[Address]{
	FromUnified: func(net netparams.Net,
		ua *unified.Address) (Address, error) {

		return FromReceivers(net, ua.Items())
	},
	FromTransparentP2PKH: func(net netparams.Net,
		keyHash [KeyHashLen]byte) (Address, error) {

		return NewAddress(net, keyHash), nil
	},
}

// Converter returns the conversion used to interpret parsed Zcash addresses
// as traceable addresses.  A plain P2PKH address converts to a traceable
// address without expiry.
func Converter() *zcashaddr.Converter[Address] {
	return converter
}

// ParseAddress parses an encoded unified or transparent P2PKH address as a
// traceable address.
func ParseAddress(s string) (Address, error) {
	zaddr, err := zcashaddr.Parse(s)
	if err != nil {
		return Address{}, err
	}
	return zcashaddr.Convert(zaddr, converter)
}

// ParseAddressOnNet is like ParseAddress but rejects addresses that belong
// to a network other than net.
func ParseAddressOnNet(s string, net netparams.Net) (Address, error) {
	zaddr, err := zcashaddr.Parse(s)
	if err != nil {
		return Address{}, err
	}
	return zcashaddr.ConvertIfNetwork(zaddr, net, converter)
}

// ToUnified returns the unified address container carrying a.
func (a Address) ToUnified() *unified.Address {
	ua, err := unified.TryFromItems(a.Receivers())
	if err != nil {
		// The items have distinct non-transparent typecodes and are
		// built from fixed size fields, so this cannot happen.
		panic(fmt.Sprintf("traceable: invalid receivers: %v", err))
	}
	return ua
}

// ToZcashAddress returns a as a unified Zcash address.
func (a Address) ToZcashAddress() *zcashaddr.Address {
	return zcashaddr.FromUnified(a.net, a.ToUnified())
}

// ToP2PKH returns the plain transparent P2PKH address for the key hash of a,
// discarding the expiry metadata.
func (a Address) ToP2PKH() *zcashaddr.Address {
	return zcashaddr.FromTransparentP2PKH(a.net, a.keyHash)
}

// Encode returns the unified address string of a.
func (a Address) Encode() string {
	return mustEncode(a.ToZcashAddress())
}

// EncodeP2PKH returns the plain transparent P2PKH address string of a.
func (a Address) EncodeP2PKH() string {
	return mustEncode(a.ToP2PKH())
}

// String returns the unified address string of a.
func (a Address) String() string {
	return a.Encode()
}

func mustEncode(zaddr *zcashaddr.Address) string {
	s, err := zaddr.Encode()
	if err != nil {
		// The smallest traceable container is exactly the smallest
		// message F4Jumble accepts and every network has parameters.
		panic(fmt.Sprintf("traceable: unable to encode %v address: %v",
			zaddr.Kind(), err))
	}
	return s
}
