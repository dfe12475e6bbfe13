// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zcashaddr

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/unified"
)

// Payload sizes of the single receiver address kinds.
const (
	SproutLen      = 64
	SaplingLen     = 43
	TransparentLen = unified.TransparentLen
)

// Kind identifies the encoding of a Zcash address.
type Kind uint8

const (
	// KindSprout is a Base58Check encoded Sprout shielded address.
	KindSprout Kind = iota

	// KindSapling is a Bech32 encoded Sapling shielded address.
	KindSapling

	// KindUnified is a Bech32m encoded unified address.
	KindUnified

	// KindP2PKH is a Base58Check encoded transparent pay-to-public-key-hash
	// address.
	KindP2PKH

	// KindP2SH is a Base58Check encoded transparent pay-to-script-hash
	// address.
	KindP2SH

	// KindTex is a Bech32m encoded transparent-source-only address
	// (ZIP 320) wrapping a P2PKH key hash.
	KindTex
)

// String returns a human readable name for the address kind.
func (k Kind) String() string {
	switch k {
	case KindSprout:
		return "sprout"
	case KindSapling:
		return "sapling"
	case KindUnified:
		return "unified"
	case KindP2PKH:
		return "p2pkh"
	case KindP2SH:
		return "p2sh"
	case KindTex:
		return "tex"
	default:
		return fmt.Sprintf("unknown kind (%d)", uint8(k))
	}
}

// Address is a parsed Zcash address: the network it belongs to, its kind and
// the kind specific payload.  Values are immutable.
type Address struct {
	net     netparams.Net
	kind    Kind
	data    []byte
	unified *unified.Address
}

// Net returns the network the address belongs to.
func (a *Address) Net() netparams.Net {
	return a.net
}

// Kind returns the kind of the address.
func (a *Address) Kind() Kind {
	return a.kind
}

// FromSprout returns a Sprout address for the given payload.
func FromSprout(net netparams.Net, data [SproutLen]byte) *Address {
	return &Address{net: net, kind: KindSprout, data: data[:]}
}

// FromSapling returns a Sapling address for the given payload.
func FromSapling(net netparams.Net, data [SaplingLen]byte) *Address {
	return &Address{net: net, kind: KindSapling, data: data[:]}
}

// FromUnified returns a unified address wrapping the given container.
func FromUnified(net netparams.Net, ua *unified.Address) *Address {
	return &Address{net: net, kind: KindUnified, unified: ua}
}

// FromTransparentP2PKH returns a transparent P2PKH address for keyHash.
func FromTransparentP2PKH(net netparams.Net,
	keyHash [TransparentLen]byte) *Address {

	return &Address{net: net, kind: KindP2PKH, data: keyHash[:]}
}

// FromTransparentP2SH returns a transparent P2SH address for scriptHash.
func FromTransparentP2SH(net netparams.Net,
	scriptHash [TransparentLen]byte) *Address {

	return &Address{net: net, kind: KindP2SH, data: scriptHash[:]}
}

// FromTex returns a TEX address for keyHash.
func FromTex(net netparams.Net, keyHash [TransparentLen]byte) *Address {
	return &Address{net: net, kind: KindTex, data: keyHash[:]}
}

// Encode returns the string form of the address.  Only a unified container
// too small to jumble can fail to encode.
func (a *Address) Encode() (string, error) {
	params := netparams.ParamsForNet(a.net)
	if params == nil {
		str := fmt.Sprintf("no parameters for %v", a.net)
		return "", addrError(ErrInvalidEncoding, str, nil)
	}

	switch a.kind {
	case KindSprout:
		return checkEncode(params.SproutPrefix, a.data), nil
	case KindP2PKH:
		return checkEncode(params.P2PKHPrefix, a.data), nil
	case KindP2SH:
		return checkEncode(params.P2SHPrefix, a.data), nil
	case KindSapling:
		return bech32Encode(params.SaplingHRP, a.data, bech32.Encode)
	case KindTex:
		return bech32Encode(params.TexHRP, a.data, bech32.EncodeM)
	case KindUnified:
		s, err := a.unified.Encode(params.UnifiedHRP)
		if err != nil {
			return "", addrError(ErrInvalidEncoding,
				"failed to encode unified address", err)
		}
		return s, nil
	default:
		str := fmt.Sprintf("cannot encode %v", a.kind)
		return "", addrError(ErrInvalidEncoding, str, nil)
	}
}

// checkEncode produces a Base58Check string with a two byte prefix.  The
// first prefix byte takes the role of the version byte and the second is
// carried as the first byte of the payload.
func checkEncode(prefix [2]byte, data []byte) string {
	payload := make([]byte, 0, 1+len(data))
	payload = append(payload, prefix[1])
	payload = append(payload, data...)
	return base58.CheckEncode(payload, prefix[0])
}

func bech32Encode(hrp string, data []byte,
	encode func(string, []byte) (string, error)) (string, error) {

	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", addrError(ErrInvalidEncoding,
			"failed to convert to base32", err)
	}
	s, err := encode(hrp, conv)
	if err != nil {
		return "", addrError(ErrInvalidEncoding,
			"failed to encode bech32", err)
	}
	return s, nil
}

// Parse decodes any Zcash address string.  Bech32 family encodings are
// dispatched on their human-readable part; everything else is tried as
// Base58Check.
func Parse(s string) (*Address, error) {
	addr, err := parse(s)
	if err != nil {
		return nil, err
	}
	log.Tracef("Parsed %v address on %v", addr.kind, addr.net)
	return addr, nil
}

func parse(s string) (*Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err == nil {
		return parseBech32(s, hrp, data)
	}
	if hrp, ok := knownHRP(s); ok {
		str := fmt.Sprintf("invalid bech32 encoding for "+
			"human-readable part %q", hrp)
		return nil, addrError(ErrInvalidEncoding, str, err)
	}
	return parseBase58(s)
}

// knownHRP returns the human-readable part of s when it names a Zcash
// unified, Sapling or TEX encoding on any network.  No Base58Check Zcash
// address begins with one of these followed by the separator.
func knownHRP(s string) (string, bool) {
	sep := strings.LastIndexByte(s, '1')
	if sep < 1 {
		return "", false
	}
	hrp := strings.ToLower(s[:sep])
	if _, ok := netparams.ParamsForUnifiedHRP(hrp); ok {
		return hrp, true
	}
	if _, ok := netparams.ParamsForSaplingHRP(hrp); ok {
		return hrp, true
	}
	if _, ok := netparams.ParamsForTexHRP(hrp); ok {
		return hrp, true
	}
	return "", false
}

// isChecksum reports whether s carries the checksum produced by encode.
func isChecksum(s, hrp string, data []byte,
	encode func(string, []byte) (string, error)) bool {

	reencoded, err := encode(hrp, data)
	return err == nil && reencoded == strings.ToLower(s)
}

func parseBech32(s, hrp string, data []byte) (*Address, error) {
	if params, ok := netparams.ParamsForUnifiedHRP(hrp); ok {
		_, ua, err := unified.Decode(s)
		if err != nil {
			return nil, addrError(ErrInvalidEncoding,
				"invalid unified address", err)
		}
		return FromUnified(params.Net, ua), nil
	}

	if params, ok := netparams.ParamsForSaplingHRP(hrp); ok {
		if !isChecksum(s, hrp, data, bech32.Encode) {
			return nil, addrError(ErrInvalidEncoding,
				"sapling address must use bech32", nil)
		}
		payload, err := fixedPayload(data, SaplingLen)
		if err != nil {
			return nil, err
		}
		var d [SaplingLen]byte
		copy(d[:], payload)
		return FromSapling(params.Net, d), nil
	}

	if params, ok := netparams.ParamsForTexHRP(hrp); ok {
		if !isChecksum(s, hrp, data, bech32.EncodeM) {
			return nil, addrError(ErrInvalidEncoding,
				"tex address must use bech32m", nil)
		}
		payload, err := fixedPayload(data, TransparentLen)
		if err != nil {
			return nil, err
		}
		var d [TransparentLen]byte
		copy(d[:], payload)
		return FromTex(params.Net, d), nil
	}

	str := fmt.Sprintf("unknown human-readable part %q", hrp)
	return nil, addrError(ErrNotZcash, str, nil)
}

// fixedPayload converts base32 data to bytes and checks its length.
func fixedPayload(data []byte, want int) ([]byte, error) {
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, addrError(ErrInvalidEncoding,
			"invalid base32 padding", err)
	}
	if len(payload) != want {
		str := fmt.Sprintf("payload must be %d bytes, got %d", want,
			len(payload))
		return nil, addrError(ErrInvalidEncoding, str, nil)
	}
	return payload, nil
}

func parseBase58(s string) (*Address, error) {
	result, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, addrError(ErrNotZcash,
			"not a bech32 or base58check address", err)
	}
	if len(result) < 1 {
		return nil, addrError(ErrNotZcash, "missing address prefix", nil)
	}
	prefix := [2]byte{version, result[0]}
	data := result[1:]

	if params, ok := netparams.ParamsForP2PKHPrefix(prefix); ok {
		if len(data) != TransparentLen {
			return nil, invalidLength(KindP2PKH, len(data))
		}
		var d [TransparentLen]byte
		copy(d[:], data)
		return FromTransparentP2PKH(params.Net, d), nil
	}

	if params, ok := netparams.ParamsForP2SHPrefix(prefix); ok {
		if len(data) != TransparentLen {
			return nil, invalidLength(KindP2SH, len(data))
		}
		var d [TransparentLen]byte
		copy(d[:], data)
		return FromTransparentP2SH(params.Net, d), nil
	}

	if params, ok := netparams.ParamsForSproutPrefix(prefix); ok {
		if len(data) != SproutLen {
			return nil, invalidLength(KindSprout, len(data))
		}
		var d [SproutLen]byte
		copy(d[:], data)
		return FromSprout(params.Net, d), nil
	}

	str := fmt.Sprintf("unknown base58check prefix %x", prefix[:])
	return nil, addrError(ErrNotZcash, str, nil)
}

func invalidLength(kind Kind, got int) error {
	str := fmt.Sprintf("invalid %v payload length %d", kind, got)
	return addrError(ErrInvalidEncoding, str, nil)
}
