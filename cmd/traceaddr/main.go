// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command traceaddr creates and inspects traceable Zcash addresses: unified
// addresses wrapping a transparent key hash with an optional expiry height
// and expiry time.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

func main() {
	os.Exit(mainInt())
}

func mainInt() int {
	cfg, parser, args, err := loadConfig(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); ok {
			// The parser already reported the problem.
			if e.Type == flags.ErrHelp {
				return 0
			}
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	cmd, err := activeCommand(cfg, parser)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log.Debugf("Running %s with %d arguments", parser.Active.Name,
		len(args))

	if err := cmd.run(os.Stdout, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// activeCommand returns the subcommand selected on the command line.
func activeCommand(cfg *config, parser *flags.Parser) (command, error) {
	if parser.Active == nil {
		return nil, fmt.Errorf("no command specified")
	}

	switch parser.Active.Name {
	case "create":
		return &cfg.Create, nil
	case "expiryheight":
		return cfg.ExpiryHeight, nil
	case "expirytime":
		return cfg.ExpiryTime, nil
	case "top2pkh":
		return cfg.ToP2PKH, nil
	case "inspect":
		return cfg.Inspect, nil
	default:
		return nil, fmt.Errorf("unknown command %q", parser.Active.Name)
	}
}
