// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nuttycom/zcash-address-wasm/internal/cfgutil"
	"github.com/nuttycom/zcash-address-wasm/netparams"
	"github.com/nuttycom/zcash-address-wasm/traceable"
	"github.com/nuttycom/zcash-address-wasm/unified"
	"github.com/nuttycom/zcash-address-wasm/zcashaddr"
)

// command is implemented by every subcommand.  Results are written to w.
type command interface {
	run(w io.Writer, args []string) error
}

// oneAddress returns the single positional address argument of a command.
func oneAddress(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one address argument, "+
			"got %d", len(args))
	}
	return args[0], nil
}

// formatOption renders an optional value, using none when it is absent.
func formatOption[T any](o fn.Option[T]) string {
	s := "none"
	o.WhenSome(func(v T) {
		s = fmt.Sprint(v)
	})
	return s
}

type createCommand struct {
	PubKey string                  `long:"pubkey" description:"Hex encoded secp256k1 public key to pay to instead of an address argument"`
	Net    string                  `long:"net" description:"Network of the address created from --pubkey {main, test, regtest}"`
	Time   uint64                  `long:"time" required:"true" description:"Expiry time in seconds since the Unix epoch"`
	Height *cfgutil.ExplicitUint32 `long:"height" description:"Expiry block height"`
}

func (c *createCommand) run(w io.Writer, args []string) error {
	var (
		addr traceable.Address
		err  error
	)
	switch {
	case c.PubKey != "" && len(args) != 0:
		return errors.New("an address argument and --pubkey can not " +
			"be used together")

	case c.PubKey != "":
		addr, err = c.addressFromPubKey()

	default:
		var s string
		s, err = oneAddress(args)
		if err != nil {
			return err
		}

		// Without a height this is exactly the create operation.
		if c.Height == nil || !c.Height.ExplicitlySet() {
			encoded, err := traceable.ToTraceableAddress(s, c.Time)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, encoded)
			return nil
		}

		addr, err = traceable.ParseAddress(s)
	}
	if err != nil {
		return err
	}

	if c.Height != nil && c.Height.ExplicitlySet() {
		addr = addr.WithExpiryHeight(c.Height.Value)
	}
	addr = addr.WithExpiryTime(c.Time)

	log.Debugf("Created traceable address on %v with expiry height %s",
		addr.Net(), formatOption(addr.ExpiryHeight()))

	fmt.Fprintln(w, addr.Encode())
	return nil
}

func (c *createCommand) addressFromPubKey() (traceable.Address, error) {
	net, err := netparams.NetFromString(c.Net)
	if err != nil {
		return traceable.Address{}, err
	}
	pubKey, err := hex.DecodeString(c.PubKey)
	if err != nil {
		return traceable.Address{}, fmt.Errorf("invalid public key "+
			"hex: %v", err)
	}
	return traceable.NewAddressFromPubKey(net, pubKey)
}

type expiryHeightCommand struct{}

func (expiryHeightCommand) run(w io.Writer, args []string) error {
	s, err := oneAddress(args)
	if err != nil {
		return err
	}
	height, err := traceable.AddrExpiryHeight(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatOption(height))
	return nil
}

type expiryTimeCommand struct{}

func (expiryTimeCommand) run(w io.Writer, args []string) error {
	s, err := oneAddress(args)
	if err != nil {
		return err
	}
	expiryTime, err := traceable.AddrExpiryTime(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatOption(expiryTime))
	return nil
}

type toP2PKHCommand struct{}

func (toP2PKHCommand) run(w io.Writer, args []string) error {
	s, err := oneAddress(args)
	if err != nil {
		return err
	}
	p2pkh, err := traceable.TraceableToP2PKH(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p2pkh)
	return nil
}

// describer lists the payload of every address kind, one line per field.
var describer = &zcashaddr.Converter[[]string]{
	FromSprout: func(_ netparams.Net,
		data [zcashaddr.SproutLen]byte) ([]string, error) {

		return []string{fmt.Sprintf("payload: %x", data[:])}, nil
	},
	FromSapling: func(_ netparams.Net,
		data [zcashaddr.SaplingLen]byte) ([]string, error) {

		return []string{fmt.Sprintf("payload: %x", data[:])}, nil
	},
	FromUnified: func(_ netparams.Net,
		ua *unified.Address) ([]string, error) {

		var lines []string
		for _, item := range ua.Items() {
			lines = append(lines, fmt.Sprintf("item %v: %x",
				item.Typecode, item.Data))
		}
		return lines, nil
	},
	FromTransparentP2PKH: func(_ netparams.Net,
		keyHash [zcashaddr.TransparentLen]byte) ([]string, error) {

		return []string{fmt.Sprintf("key hash: %x", keyHash[:])}, nil
	},
	FromTransparentP2SH: func(_ netparams.Net,
		scriptHash [zcashaddr.TransparentLen]byte) ([]string, error) {

		return []string{fmt.Sprintf("script hash: %x", scriptHash[:])}, nil
	},
	FromTex: func(_ netparams.Net,
		keyHash [zcashaddr.TransparentLen]byte) ([]string, error) {

		return []string{fmt.Sprintf("key hash: %x", keyHash[:])}, nil
	},
}

type inspectCommand struct{}

func (inspectCommand) run(w io.Writer, args []string) error {
	s, err := oneAddress(args)
	if err != nil {
		return err
	}
	zaddr, err := zcashaddr.Parse(s)
	if err != nil {
		return err
	}
	lines, err := zcashaddr.Convert(zaddr, describer)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "kind: %v\n", zaddr.Kind())
	fmt.Fprintf(w, "network: %v\n", zaddr.Net())
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	addr, err := zcashaddr.Convert(zaddr, traceable.Converter())
	switch {
	case errors.Is(err, zcashaddr.ErrUnsupported):
		fmt.Fprintln(w, "traceable: no")

	case err != nil:
		fmt.Fprintf(w, "traceable: invalid (%v)\n", err)

	default:
		fmt.Fprintln(w, "traceable: yes")
		fmt.Fprintf(w, "expiry height: %s\n",
			formatOption(addr.ExpiryHeight()))
		fmt.Fprintf(w, "expiry time: %s\n",
			formatOption(addr.ExpiryTime()))
		fmt.Fprintf(w, "p2pkh: %s\n", addr.EncodeP2PKH())
	}
	return nil
}
