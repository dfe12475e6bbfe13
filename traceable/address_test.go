// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traceable

import (
	"encoding/hex"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/zcashaddr"
	"github.com/stretchr/testify/require"
)

func hexToBytes(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestNewAddressFromPubKey checks that public keys are hashed in the
// serialization they are given.
func TestNewAddressFromPubKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		net     netparams.Net
		pubKey  string
		keyHash string
		p2pkh   string
	}{{
		name: "compressed main",
		net:  netparams.MainNet,
		pubKey: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f28" +
			"15b16f81798",
		keyHash: "751e76e8199196d454941c45d1b3a323f1433bd6",
		p2pkh:   "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs",
	}, {
		name: "compressed test",
		net:  netparams.TestNet,
		pubKey: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f28" +
			"15b16f81798",
		keyHash: "751e76e8199196d454941c45d1b3a323f1433bd6",
		p2pkh:   "tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs",
	}, {
		name: "uncompressed test",
		net:  netparams.TestNet,
		pubKey: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f28" +
			"15b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a6855" +
			"4199c47d08ffb10d4b8",
		keyHash: "91b24bf9f5288532960ac687abb035127b1d28a5",
		p2pkh:   "tmNziuGJbfyL1fFVHwDFykhpiaPocHwQg76",
	}}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			addr, err := NewAddressFromPubKey(
				test.net, hexToBytes(t, test.pubKey),
			)
			require.NoError(t, err)

			keyHash := addr.KeyHash()
			require.Equal(t, test.keyHash, hex.EncodeToString(keyHash[:]))
			require.Equal(t, test.net, addr.Net())
			require.True(t, addr.ExpiryHeight().IsNone())
			require.True(t, addr.ExpiryTime().IsNone())
			require.Equal(t, test.p2pkh, addr.EncodeP2PKH())
		})
	}
}

func TestNewAddressFromPubKeyInvalid(t *testing.T) {
	t.Parallel()

	for _, pubKey := range [][]byte{
		nil,
		{0x02},
		make([]byte, 33),
		hexToBytes(t, "0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d9"+
			"59f2815b16f81798"),
	} {
		_, err := NewAddressFromPubKey(netparams.MainNet, pubKey)
		require.Error(t, err)
	}
}

// TestBuilders ensures the With methods return copies and leave the
// receiver untouched.
func TestBuilders(t *testing.T) {
	t.Parallel()

	base := NewAddress(netparams.MainNet, testKeyHash(5))

	withHeight := base.WithExpiryHeight(10)
	require.True(t, base.ExpiryHeight().IsNone())
	require.Equal(t, fn.Some(uint32(10)), withHeight.ExpiryHeight())
	require.True(t, withHeight.ExpiryTime().IsNone())

	withBoth := withHeight.WithExpiryTime(20)
	require.True(t, withHeight.ExpiryTime().IsNone())
	require.Equal(t, fn.Some(uint32(10)), withBoth.ExpiryHeight())
	require.Equal(t, fn.Some(uint64(20)), withBoth.ExpiryTime())

	replaced := withBoth.WithExpiryTime(30)
	require.Equal(t, fn.Some(uint64(20)), withBoth.ExpiryTime())
	require.Equal(t, fn.Some(uint64(30)), replaced.ExpiryTime())

	require.Equal(t, base, withBoth.WithoutExpiry())
}

// TestEncodeVector checks an address with both expiry fields against a
// known encoding.
func TestEncodeVector(t *testing.T) {
	t.Parallel()

	const want = "utest1f02lg68t83erme6s9emwck45xnzn6de79ga3mxf8x0p5gr6enj" +
		"nddv35swmst4wreumskyskadx86ufw3j3k44qkn2k25"

	var keyHash [KeyHashLen]byte
	copy(keyHash[:], hexToBytes(t, "751e76e8199196d454941c45d1b3a323f1433bd6"))
	addr := NewAddress(netparams.TestNet, keyHash).
		WithExpiryHeight(2500000).
		WithExpiryTime(1700000000)

	require.Equal(t, want, addr.Encode())
	require.Equal(t, want, addr.String())

	parsed, err := ParseAddress(want)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)
}

// TestRoundTrip encodes every combination of expiry fields on every network
// and parses the result back.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	heights := []fn.Option[uint32]{
		fn.None[uint32](), fn.Some(uint32(0)), fn.Some(uint32(1)),
		fn.Some(uint32(0xffffffff)),
	}
	times := []fn.Option[uint64]{
		fn.None[uint64](), fn.Some(uint64(0)), fn.Some(uint64(1700000000)),
		fn.Some(uint64(0xffffffffffffffff)),
	}

	for _, net := range []netparams.Net{
		netparams.MainNet, netparams.TestNet, netparams.RegtestNet,
	} {
		for _, height := range heights {
			for _, expiryTime := range times {
				addr := NewAddress(net, testKeyHash(0xf0))
				height.WhenSome(func(h uint32) {
					addr = addr.WithExpiryHeight(h)
				})
				expiryTime.WhenSome(func(et uint64) {
					addr = addr.WithExpiryTime(et)
				})

				encoded := addr.Encode()
				parsed, err := ParseAddress(encoded)
				require.NoError(t, err, encoded)
				require.Equal(t, addr, parsed)

				gotHeight, err := AddrExpiryHeight(encoded)
				require.NoError(t, err)
				require.Equal(t, height, gotHeight)

				gotTime, err := AddrExpiryTime(encoded)
				require.NoError(t, err)
				require.Equal(t, expiryTime, gotTime)
			}
		}
	}
}

func TestParseAddressOnNet(t *testing.T) {
	t.Parallel()

	addr := NewAddress(netparams.RegtestNet, testKeyHash(1)).
		WithExpiryHeight(100)

	parsed, err := ParseAddressOnNet(addr.Encode(), netparams.RegtestNet)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)

	_, err = ParseAddressOnNet(addr.Encode(), netparams.MainNet)
	require.ErrorIs(t, err, zcashaddr.ErrIncorrectNetwork)

	_, err = ParseAddressOnNet(zeroP2PKH, netparams.TestNet)
	require.ErrorIs(t, err, zcashaddr.ErrIncorrectNetwork)
}

// TestToUnified checks the container produced for an address and its
// conversion to a generic Zcash address.
func TestToUnified(t *testing.T) {
	t.Parallel()

	addr := NewAddress(netparams.MainNet, testKeyHash(2)).WithExpiryTime(9)

	ua := addr.ToUnified()
	require.Equal(t, addr.Receivers(), ua.Items())

	zaddr := addr.ToZcashAddress()
	require.Equal(t, zcashaddr.KindUnified, zaddr.Kind())
	require.Equal(t, netparams.MainNet, zaddr.Net())

	p2pkh := addr.ToP2PKH()
	require.Equal(t, zcashaddr.KindP2PKH, p2pkh.Kind())
	s, err := p2pkh.Encode()
	require.NoError(t, err)
	require.Equal(t, addr.EncodeP2PKH(), s)
}
