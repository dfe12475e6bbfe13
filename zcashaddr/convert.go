// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zcashaddr

import (
	"fmt"

	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/unified"
)

// Converter describes how a parsed address is turned into a value of type T.
// Each field handles one address kind; a nil field marks the kind as
// unsupported for T.  Errors returned by the functions are passed back to
// the caller of Convert unchanged.
type Converter[T any] struct {
	FromSprout           func(netparams.Net, [SproutLen]byte) (T, error)
	FromSapling          func(netparams.Net, [SaplingLen]byte) (T, error)
	FromUnified          func(netparams.Net, *unified.Address) (T, error)
	FromTransparentP2PKH func(netparams.Net, [TransparentLen]byte) (T, error)
	FromTransparentP2SH  func(netparams.Net, [TransparentLen]byte) (T, error)
	FromTex              func(netparams.Net, [TransparentLen]byte) (T, error)
}

func unsupported[T any](a *Address) (T, error) {
	var zero T
	str := fmt.Sprintf("%v addresses on %v are not supported by this "+
		"conversion", a.kind, a.net)
	return zero, addrError(ErrUnsupported, str, nil)
}

// Convert dispatches a to the function of c registered for its kind.
func Convert[T any](a *Address, c *Converter[T]) (T, error) {
	switch a.kind {
	case KindSprout:
		if c.FromSprout != nil {
			var d [SproutLen]byte
			copy(d[:], a.data)
			return c.FromSprout(a.net, d)
		}

	case KindSapling:
		if c.FromSapling != nil {
			var d [SaplingLen]byte
			copy(d[:], a.data)
			return c.FromSapling(a.net, d)
		}

	case KindUnified:
		if c.FromUnified != nil {
			return c.FromUnified(a.net, a.unified)
		}

	case KindP2PKH:
		if c.FromTransparentP2PKH != nil {
			var d [TransparentLen]byte
			copy(d[:], a.data)
			return c.FromTransparentP2PKH(a.net, d)
		}

	case KindP2SH:
		if c.FromTransparentP2SH != nil {
			var d [TransparentLen]byte
			copy(d[:], a.data)
			return c.FromTransparentP2SH(a.net, d)
		}

	case KindTex:
		if c.FromTex != nil {
			var d [TransparentLen]byte
			copy(d[:], a.data)
			return c.FromTex(a.net, d)
		}
	}

	return unsupported[T](a)
}

// ConvertIfNetwork is like Convert but first requires the address to belong
// to net.
func ConvertIfNetwork[T any](a *Address, net netparams.Net,
	c *Converter[T]) (T, error) {

	if a.net != net {
		var zero T
		str := fmt.Sprintf("address is for %v, expected %v", a.net, net)
		return zero, addrError(ErrIncorrectNetwork, str, nil)
	}
	return Convert(a, c)
}
