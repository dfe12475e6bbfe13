// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/unified"
	"github.com/stretchr/testify/require"
)

func testKeyHash(b byte) [KeyHashLen]byte {
	var h [KeyHashLen]byte
	for i := range h {
		h[i] = b + byte(i)
	}
	return h
}

func item(typecode unified.Typecode, n int) unified.Receiver {
	return unified.Receiver{
		Typecode: typecode,
		Data:     bytes.Repeat([]byte{0x01}, n),
	}
}

// TestReceivers checks the items produced for each combination of expiry
// fields.
func TestReceivers(t *testing.T) {
	t.Parallel()

	keyHash := testKeyHash(1)
	base := NewAddress(netparams.MainNet, keyHash)

	height := []byte{0x40, 0x42, 0x0f, 0x00}
	epoch := make([]byte, 8)
	binary.LittleEndian.PutUint64(epoch, 1700000000)

	tests := []struct {
		name string
		addr Address
		want []unified.Receiver
	}{{
		name: "key hash only",
		addr: base,
		want: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
		},
	}, {
		name: "expiry height",
		addr: base.WithExpiryHeight(1000000),
		want: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			{Typecode: TypecodeExpiryHeight, Data: height},
		},
	}, {
		name: "expiry time",
		addr: base.WithExpiryTime(1700000000),
		want: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			{Typecode: TypecodeExpiryTime, Data: epoch},
		},
	}, {
		name: "both",
		addr: base.WithExpiryTime(1700000000).WithExpiryHeight(1000000),
		want: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			{Typecode: TypecodeExpiryHeight, Data: height},
			{Typecode: TypecodeExpiryTime, Data: epoch},
		},
	}}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := test.addr.Receivers()
			require.Equal(t, test.want, got)

			back, err := FromReceivers(netparams.MainNet, got)
			require.NoError(t, err)
			require.Equal(t, test.addr, back)
		})
	}
}

// TestFromReceivers checks item interpretation, including the order in which
// defects are reported.
func TestFromReceivers(t *testing.T) {
	t.Parallel()

	keyHash := testKeyHash(9)

	tests := []struct {
		name       string
		items      []unified.Receiver
		wantErr    error
		wantHeight fn.Option[uint32]
		wantTime   fn.Option[uint64]
	}{{
		name: "standard p2pkh receiver",
		items: []unified.Receiver{
			unified.NewP2PKHReceiver(keyHash),
			item(unified.TypecodeOrchard, 43),
		},
		wantHeight: fn.None[uint32](),
		wantTime:   fn.None[uint64](),
	}, {
		name: "unknown items ignored",
		items: []unified.Receiver{
			item(unified.TypecodeSapling, 43),
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(0xe2, 3),
			{Typecode: TypecodeExpiryHeight, Data: []byte{1, 0, 0, 0}},
		},
		wantHeight: fn.Some(uint32(1)),
		wantTime:   fn.None[uint64](),
	}, {
		name: "order independent",
		items: []unified.Receiver{
			{Typecode: TypecodeExpiryTime, Data: []byte{2, 0, 0, 0, 0, 0, 0, 0}},
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
		},
		wantHeight: fn.None[uint32](),
		wantTime:   fn.Some(uint64(2)),
	}, {
		name:    "empty",
		wantErr: ErrP2pkhReceiverNotFound,
	}, {
		name: "expiry only",
		items: []unified.Receiver{
			item(TypecodeExpiryHeight, 4),
			item(TypecodeExpiryTime, 8),
		},
		wantErr: ErrP2pkhReceiverNotFound,
	}, {
		name: "short key hash",
		items: []unified.Receiver{
			item(TypecodeKeyHash, 19),
		},
		wantErr: ErrReceiverLengthInvalid,
	}, {
		name: "long key hash",
		items: []unified.Receiver{
			item(TypecodeKeyHash, 21),
		},
		wantErr: ErrReceiverLengthInvalid,
	}, {
		name: "height 3 bytes",
		items: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(TypecodeExpiryHeight, 3),
		},
		wantErr: ErrExpiryHeightInvalid,
	}, {
		name: "height 5 bytes",
		items: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(TypecodeExpiryHeight, 5),
		},
		wantErr: ErrExpiryHeightInvalid,
	}, {
		name: "time 7 bytes",
		items: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(TypecodeExpiryTime, 7),
		},
		wantErr: ErrExpiryTimeInvalid,
	}, {
		name: "time 9 bytes",
		items: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(TypecodeExpiryTime, 9),
		},
		wantErr: ErrExpiryTimeInvalid,
	}, {
		name: "missing key hash reported before bad height",
		items: []unified.Receiver{
			item(TypecodeExpiryHeight, 3),
			item(TypecodeExpiryTime, 7),
		},
		wantErr: ErrP2pkhReceiverNotFound,
	}, {
		name: "bad key hash reported before bad height",
		items: []unified.Receiver{
			item(TypecodeKeyHash, 10),
			item(TypecodeExpiryHeight, 3),
		},
		wantErr: ErrReceiverLengthInvalid,
	}, {
		name: "bad height reported before bad time",
		items: []unified.Receiver{
			{Typecode: TypecodeKeyHash, Data: keyHash[:]},
			item(TypecodeExpiryTime, 7),
			item(TypecodeExpiryHeight, 3),
		},
		wantErr: ErrExpiryHeightInvalid,
	}}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromReceivers(netparams.TestNet, test.items)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, netparams.TestNet, got.Net())
			require.Equal(t, keyHash, got.KeyHash())
			require.Equal(t, test.wantHeight, got.ExpiryHeight())
			require.Equal(t, test.wantTime, got.ExpiryTime())
		})
	}
}
