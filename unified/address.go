// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/wire"
	"github.com/nuttycom/zcash-address-wasm/f4jumble"
)

// paddingLen is the length of the human-readable part padding appended to
// the raw encoding before jumbling.
const paddingLen = 16

// Address is a validated unified address container.  Items are kept in
// ascending typecode order and no two items share a typecode.
type Address struct {
	items []Receiver
}

// TryFromItems builds a unified address from the given receivers.  The
// receivers are copied and sorted by typecode.
func TryFromItems(items []Receiver) (*Address, error) {
	seen := make(map[Typecode]struct{}, len(items))
	onlyTransparent := true
	for _, item := range items {
		if _, ok := seen[item.Typecode]; ok {
			str := fmt.Sprintf("duplicate typecode %v", item.Typecode)
			return nil, unifiedError(ErrDuplicateTypecode, str, nil)
		}
		seen[item.Typecode] = struct{}{}

		if err := item.validate(); err != nil {
			return nil, err
		}
		if !item.Typecode.IsTransparent() {
			onlyTransparent = false
		}
	}

	_, hasP2PKH := seen[TypecodeP2PKH]
	_, hasP2SH := seen[TypecodeP2SH]
	if hasP2PKH && hasP2SH {
		str := "unified address contains both P2PKH and P2SH receivers"
		return nil, unifiedError(ErrBothP2PKHAndP2SH, str, nil)
	}
	if onlyTransparent {
		str := "unified address must contain a non-transparent receiver"
		return nil, unifiedError(ErrOnlyTransparent, str, nil)
	}

	sorted := make([]Receiver, len(items))
	for i, item := range items {
		sorted[i] = Receiver{
			Typecode: item.Typecode,
			Data:     append([]byte(nil), item.Data...),
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Typecode < sorted[j].Typecode
	})

	return &Address{items: sorted}, nil
}

// Items returns a copy of the receivers in encoding order.
func (a *Address) Items() []Receiver {
	items := make([]Receiver, len(a.items))
	for i, item := range a.items {
		items[i] = Receiver{
			Typecode: item.Typecode,
			Data:     append([]byte(nil), item.Data...),
		}
	}
	return items
}

// Receiver returns the item with the given typecode.
func (a *Address) Receiver(t Typecode) (Receiver, bool) {
	for _, item := range a.items {
		if item.Typecode == t {
			return Receiver{
				Typecode: item.Typecode,
				Data:     append([]byte(nil), item.Data...),
			}, true
		}
	}
	return Receiver{}, false
}

// padding returns the 16 byte padding block for hrp.
func padding(hrp string) ([]byte, error) {
	if len(hrp) > paddingLen {
		str := fmt.Sprintf("human-readable part %q exceeds %d bytes",
			hrp, paddingLen)
		return nil, unifiedError(ErrInvalidHRP, str, nil)
	}
	pad := make([]byte, paddingLen)
	copy(pad, hrp)
	return pad, nil
}

// rawEncode serializes the items followed by the padding block.  Every item
// is CompactSize(typecode) || CompactSize(len) || data.
func (a *Address) rawEncode(hrp string) ([]byte, error) {
	pad, err := padding(hrp)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, item := range a.items {
		// Writes to a bytes.Buffer cannot fail.
		_ = wire.WriteVarInt(&buf, 0, uint64(item.Typecode))
		_ = wire.WriteVarInt(&buf, 0, uint64(len(item.Data)))
		buf.Write(item.Data)
	}
	buf.Write(pad)

	return buf.Bytes(), nil
}

// Encode returns the Bech32m string encoding of the address under hrp.
func (a *Address) Encode(hrp string) (string, error) {
	raw, err := a.rawEncode(hrp)
	if err != nil {
		return "", err
	}

	jumbled, err := f4jumble.Jumble(raw)
	if err != nil {
		return "", unifiedError(ErrInvalidEncoding,
			"failed to jumble raw encoding", err)
	}

	conv, err := bech32.ConvertBits(jumbled, 8, 5, true)
	if err != nil {
		return "", unifiedError(ErrInvalidEncoding,
			"failed to convert to base32", err)
	}

	encoded, err := bech32.EncodeM(hrp, conv)
	if err != nil {
		return "", unifiedError(ErrInvalidEncoding,
			"failed to encode bech32m", err)
	}
	return encoded, nil
}

// Decode parses a Bech32m encoded unified address and returns its
// human-readable part along with the container.  The caller is responsible
// for mapping the human-readable part to a network.
func Decode(s string) (string, *Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, unifiedError(ErrInvalidEncoding,
			"failed to decode bech32m string", err)
	}

	// DecodeNoLimit accepts both checksum constants.  Re-encoding with the
	// Bech32m constant distinguishes the two.
	reencoded, err := bech32.EncodeM(hrp, data)
	if err != nil || reencoded != strings.ToLower(s) {
		return "", nil, unifiedError(ErrNotUnified,
			"string is not bech32m encoded", err)
	}

	jumbled, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, unifiedError(ErrInvalidEncoding,
			"invalid base32 padding", err)
	}

	raw, err := f4jumble.Unjumble(jumbled)
	if err != nil {
		return "", nil, unifiedError(ErrInvalidEncoding,
			"failed to unjumble raw encoding", err)
	}

	pad, err := padding(hrp)
	if err != nil {
		return "", nil, err
	}
	body := raw[:len(raw)-paddingLen]
	if !bytes.Equal(raw[len(raw)-paddingLen:], pad) {
		return "", nil, unifiedError(ErrInvalidEncoding,
			"invalid padding", nil)
	}

	items, err := parseItems(body)
	if err != nil {
		return "", nil, err
	}

	addr, err := TryFromItems(items)
	if err != nil {
		return "", nil, err
	}
	return hrp, addr, nil
}

// parseItems reads the sequence of items of a raw encoding with the padding
// already removed.
func parseItems(body []byte) ([]Receiver, error) {
	var items []Receiver
	r := bytes.NewReader(body)
	for r.Len() > 0 {
		typecode, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return nil, unifiedError(ErrInvalidEncoding,
				"failed to read typecode", err)
		}
		if typecode > math.MaxUint32 {
			str := fmt.Sprintf("typecode %d out of range", typecode)
			return nil, unifiedError(ErrInvalidTypecode, str, nil)
		}

		length, err := wire.ReadVarInt(r, 0)
		if err != nil {
			return nil, unifiedError(ErrInvalidEncoding,
				"failed to read item length", err)
		}
		if length > uint64(r.Len()) {
			str := fmt.Sprintf("item length %d exceeds remaining "+
				"%d bytes", length, r.Len())
			return nil, unifiedError(ErrInvalidEncoding, str, nil)
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, unifiedError(ErrInvalidEncoding,
				"failed to read item data", err)
		}

		items = append(items, Receiver{
			Typecode: Typecode(typecode),
			Data:     data,
		})
	}
	return items, nil
}
