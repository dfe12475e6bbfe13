// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParamsForNet ensures every network resolves to its own parameters.
func TestParamsForNet(t *testing.T) {
	t.Parallel()

	require.Equal(t, &MainNetParams, ParamsForNet(MainNet))
	require.Equal(t, &TestNetParams, ParamsForNet(TestNet))
	require.Equal(t, &RegtestNetParams, ParamsForNet(RegtestNet))
	require.Nil(t, ParamsForNet(Net(42)))
}

// TestHRPLookup checks the Bech32 human-readable part lookups.
func TestHRPLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lookup func(string) (*Params, bool)
		hrp    string
		want   Net
	}{
		{"unified main", ParamsForUnifiedHRP, "u", MainNet},
		{"unified test", ParamsForUnifiedHRP, "utest", TestNet},
		{"unified regtest", ParamsForUnifiedHRP, "uregtest", RegtestNet},
		{"sapling main", ParamsForSaplingHRP, "zs", MainNet},
		{"sapling test", ParamsForSaplingHRP, "ztestsapling", TestNet},
		{"sapling regtest", ParamsForSaplingHRP, "zregtestsapling", RegtestNet},
		{"tex main", ParamsForTexHRP, "tex", MainNet},
		{"tex test", ParamsForTexHRP, "textest", TestNet},
		{"tex regtest", ParamsForTexHRP, "texregtest", RegtestNet},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			params, ok := test.lookup(test.hrp)
			require.True(t, ok)
			require.Equal(t, test.want, params.Net)
		})
	}

	_, ok := ParamsForUnifiedHRP("zs")
	require.False(t, ok)
}

// TestSharedPrefixesResolveToTestNet ensures that Base58Check prefixes shared
// by the test and regtest networks resolve to the test network.
func TestSharedPrefixesResolveToTestNet(t *testing.T) {
	t.Parallel()

	p, ok := ParamsForP2PKHPrefix(RegtestNetParams.P2PKHPrefix)
	require.True(t, ok)
	require.Equal(t, TestNet, p.Net)

	p, ok = ParamsForP2SHPrefix(RegtestNetParams.P2SHPrefix)
	require.True(t, ok)
	require.Equal(t, TestNet, p.Net)

	p, ok = ParamsForSproutPrefix(RegtestNetParams.SproutPrefix)
	require.True(t, ok)
	require.Equal(t, TestNet, p.Net)

	p, ok = ParamsForP2PKHPrefix([2]byte{0x1c, 0xb8})
	require.True(t, ok)
	require.Equal(t, MainNet, p.Net)

	_, ok = ParamsForP2PKHPrefix([2]byte{0x00, 0x00})
	require.False(t, ok)
}

// TestNetFromString tests parsing of command line network names.
func TestNetFromString(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Net{
		"main":    MainNet,
		"mainnet": MainNet,
		"test":    TestNet,
		"testnet": TestNet,
		"regtest": RegtestNet,
	} {
		got, err := NetFromString(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, got, ParamsForNet(got).Net)
	}

	_, err := NetFromString("simnet")
	require.Error(t, err)
	require.Equal(t, "unknown net (9)", Net(9).String())
}
