// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import (
	"encoding/binary"

	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/unified"
)

// Typecodes of the items a traceable address is made of.
const (
	// TypecodeKeyHash carries the 20 byte transparent key hash.
	TypecodeKeyHash unified.Typecode = 0x04

	// TypecodeExpiryHeight carries a 4 byte little-endian block height.
	TypecodeExpiryHeight unified.Typecode = 0xe0

	// TypecodeExpiryTime carries an 8 byte little-endian Unix time.
	TypecodeExpiryTime unified.Typecode = 0xe1
)

const (
	expiryHeightLen = 4
	expiryTimeLen   = 8
)

// Receivers returns the unified address items encoding a: the key hash
// followed by whichever expiry fields are set.
func (a Address) Receivers() []unified.Receiver {
	keyHash := a.keyHash
	items := []unified.Receiver{{
		Typecode: TypecodeKeyHash,
		Data:     keyHash[:],
	}}

	a.expiryHeight.WhenSome(func(height uint32) {
		data := make([]byte, expiryHeightLen)
		binary.LittleEndian.PutUint32(data, height)
		items = append(items, unified.Receiver{
			Typecode: TypecodeExpiryHeight,
			Data:     data,
		})
	})

	a.expiryTime.WhenSome(func(epochTime uint64) {
		data := make([]byte, expiryTimeLen)
		binary.LittleEndian.PutUint64(data, epochTime)
		items = append(items, unified.Receiver{
			Typecode: TypecodeExpiryTime,
			Data:     data,
		})
	})

	return items
}

// FromReceivers interprets the items of a unified address parsed on net.
// The key hash is checked before the expiry height, which is checked
// before the expiry time, so the error reported for an address with several
// defects is always the first in that order.  Items with other typecodes
// are ignored.
func FromReceivers(net netparams.Net,
	items []unified.Receiver) (Address, error) {

	keyHash, err := findKeyHash(items)
	if err != nil {
		return Address{}, err
	}

	addr := NewAddress(net, keyHash)

	if item, ok := findItem(items, TypecodeExpiryHeight); ok {
		if len(item.Data) != expiryHeightLen {
			return Address{}, traceableError(ErrExpiryHeightInvalid)
		}
		addr.expiryHeight = fn.Some(
			binary.LittleEndian.Uint32(item.Data),
		)
	}

	if item, ok := findItem(items, TypecodeExpiryTime); ok {
		if len(item.Data) != expiryTimeLen {
			return Address{}, traceableError(ErrExpiryTimeInvalid)
		}
		addr.expiryTime = fn.Some(
			binary.LittleEndian.Uint64(item.Data),
		)
	}

	log.Tracef("Decoded traceable address from %d items: %v", len(items),
		newLogClosure(func() string {
			return spew.Sdump(items)
		}))

	return addr, nil
}

// findKeyHash returns the payload of the first item that is either a
// standard P2PKH receiver or a TypecodeKeyHash item.  A TypecodeKeyHash item
// of the wrong length fails immediately rather than letting the search
// continue.
func findKeyHash(items []unified.Receiver) ([KeyHashLen]byte, error) {
	var keyHash [KeyHashLen]byte
	for _, item := range items {
		switch item.Typecode {
		case unified.TypecodeP2PKH, TypecodeKeyHash:
			if len(item.Data) != KeyHashLen {
				return keyHash, traceableError(
					ErrReceiverLengthInvalid,
				)
			}
			copy(keyHash[:], item.Data)
			return keyHash, nil
		}
	}
	return keyHash, traceableError(ErrP2pkhReceiverNotFound)
}

// findItem returns the first item with the given typecode.
func findItem(items []unified.Receiver,
	typecode unified.Typecode) (unified.Receiver, bool) {

	for _, item := range items {
		if item.Typecode == typecode {
			return item, true
		}
	}
	return unified.Receiver{}, false
}
