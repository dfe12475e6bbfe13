// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package build

import (
	"os"

	"github.com/btcsuite/btclog"
)

// LogType indicates the type of logging specified by the build flag.
type LogType byte

const (
	// LogTypeNone indicates no logging.
	LogTypeNone LogType = iota

	// LogTypeStdOut all logging is written directly to stdout.
	LogTypeStdOut

	// LogTypeDefault logs through the backend supplied by the caller.
	LogTypeDefault
)

// String returns a human readable identifier for the logging type.
func (t LogType) String() string {
	switch t {
	case LogTypeNone:
		return "none"
	case LogTypeStdOut:
		return "stdout"
	case LogTypeDefault:
		return "default"
	default:
		return "unknown"
	}
}

// DefaultLevel returns the log level selected by build tags, falling back to
// info when the tag does not name a known level.
func DefaultLevel() btclog.Level {
	level, ok := btclog.LevelFromString(LogLevel)
	if !ok {
		return btclog.LevelInfo
	}
	return level
}

// NewSubLogger constructs a new subsystem log from the current LogWriter
// implementation. Library packages call it from their init functions with a
// nil constructor, which leaves them silent until UseLogger is called, unless
// the binary was built with the stdlog tag.
func NewSubLogger(subsystem string,
	genSubLogger func(string) btclog.Logger) btclog.Logger {

	switch Deployment {

	// For production builds, generate a new subsystem logger from the
	// primary log backend. If no function is provided, logging will be
	// disabled.
	case Production:
		if genSubLogger != nil {
			return genSubLogger(subsystem)
		}

	// Development builds either mimic production or, when built with the
	// stdlog tag for unit tests, write every subsystem straight to stdout.
	case Development:
		switch LoggingType {
		case LogTypeDefault:
			if genSubLogger != nil {
				return genSubLogger(subsystem)
			}

		case LogTypeStdOut:
			backend := btclog.NewBackend(os.Stdout)
			logger := backend.Logger(subsystem)
			logger.SetLevel(DefaultLevel())

			return logger
		}
	}

	return btclog.Disabled
}
