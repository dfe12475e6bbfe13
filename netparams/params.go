// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import "fmt"

// Net identifies the Zcash network an encoded address belongs to.
type Net uint8

const (
	// MainNet is the Zcash production network.
	MainNet Net = iota

	// TestNet is the public Zcash test network.
	TestNet

	// RegtestNet is a local regression test network.
	RegtestNet
)

// String returns the short network name used on the command line.
func (n Net) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	case RegtestNet:
		return "regtest"
	default:
		return fmt.Sprintf("unknown net (%d)", uint8(n))
	}
}

// Params groups the address encoding constants for a single network.
type Params struct {
	Name string
	Net  Net

	// Human-readable parts of the Bech32 and Bech32m encodings.
	UnifiedHRP string
	SaplingHRP string
	TexHRP     string

	// Two-byte Base58Check prefixes.
	P2PKHPrefix  [2]byte
	P2SHPrefix   [2]byte
	SproutPrefix [2]byte
}

// MainNetParams contains the address parameters of the main network.
var MainNetParams = Params{
	Name:         "mainnet",
	Net:          MainNet,
	UnifiedHRP:   "u",
	SaplingHRP:   "zs",
	TexHRP:       "tex",
	P2PKHPrefix:  [2]byte{0x1c, 0xb8},
	P2SHPrefix:   [2]byte{0x1c, 0xbd},
	SproutPrefix: [2]byte{0x16, 0x9a},
}

// TestNetParams contains the address parameters of the test network.
var TestNetParams = Params{
	Name:         "testnet",
	Net:          TestNet,
	UnifiedHRP:   "utest",
	SaplingHRP:   "ztestsapling",
	TexHRP:       "textest",
	P2PKHPrefix:  [2]byte{0x1d, 0x25},
	P2SHPrefix:   [2]byte{0x1c, 0xba},
	SproutPrefix: [2]byte{0x16, 0xb6},
}

// RegtestNetParams contains the address parameters of the regression test
// network.  Its Base58Check prefixes are shared with the test network, so a
// transparent or Sprout address can never be attributed to regtest.
var RegtestNetParams = Params{
	Name:         "regtest",
	Net:          RegtestNet,
	UnifiedHRP:   "uregtest",
	SaplingHRP:   "zregtestsapling",
	TexHRP:       "texregtest",
	P2PKHPrefix:  TestNetParams.P2PKHPrefix,
	P2SHPrefix:   TestNetParams.P2SHPrefix,
	SproutPrefix: TestNetParams.SproutPrefix,
}

// allParams lists every network in lookup order.  Test precedes regtest so
// that prefixes they share resolve to the test network.
var allParams = []*Params{&MainNetParams, &TestNetParams, &RegtestNetParams}

// ParamsForNet returns the parameters of the given network, or nil when the
// network is unknown.
func ParamsForNet(net Net) *Params {
	for _, p := range allParams {
		if p.Net == net {
			return p
		}
	}
	return nil
}

// NetFromString parses a network name as accepted on the command line.
func NetFromString(s string) (Net, error) {
	switch s {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegtestNet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

func lookup(match func(*Params) bool) (*Params, bool) {
	for _, p := range allParams {
		if match(p) {
			return p, true
		}
	}
	return nil, false
}

// ParamsForUnifiedHRP returns the network using hrp for unified addresses.
func ParamsForUnifiedHRP(hrp string) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.UnifiedHRP == hrp })
}

// ParamsForSaplingHRP returns the network using hrp for Sapling addresses.
func ParamsForSaplingHRP(hrp string) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.SaplingHRP == hrp })
}

// ParamsForTexHRP returns the network using hrp for TEX addresses.
func ParamsForTexHRP(hrp string) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.TexHRP == hrp })
}

// ParamsForP2PKHPrefix returns the network using prefix for P2PKH addresses.
func ParamsForP2PKHPrefix(prefix [2]byte) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.P2PKHPrefix == prefix })
}

// ParamsForP2SHPrefix returns the network using prefix for P2SH addresses.
func ParamsForP2SHPrefix(prefix [2]byte) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.P2SHPrefix == prefix })
}

// ParamsForSproutPrefix returns the network using prefix for Sprout
// addresses.
func ParamsForSproutPrefix(prefix [2]byte) (*Params, bool) {
	return lookup(func(p *Params) bool { return p.SproutPrefix == prefix })
}
