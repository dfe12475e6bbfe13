// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import "github.com/lightningnetwork/lnd/fn/v2"

// ToTraceableAddress parses address, sets its expiry time to expiryTime and
// returns the resulting unified address.  An expiry height already present
// in address is kept.
func ToTraceableAddress(address string, expiryTime uint64) (string, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	return addr.WithExpiryTime(expiryTime).Encode(), nil
}

// AddrExpiryHeight returns the expiry height carried by address.
func AddrExpiryHeight(address string) (fn.Option[uint32], error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return fn.None[uint32](), err
	}
	return addr.ExpiryHeight(), nil
}

// AddrExpiryTime returns the expiry time carried by address.
func AddrExpiryTime(address string) (fn.Option[uint64], error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return fn.None[uint64](), err
	}
	return addr.ExpiryTime(), nil
}

// TraceableToP2PKH returns the plain transparent P2PKH address paying to
// the key hash of address.
func TraceableToP2PKH(address string) (string, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	return addr.EncodeP2PKH(), nil
}
