//go:build !stdlog && !nolog
// +build !stdlog,!nolog

package build

// LoggingType is a log type that writes to the backend supplied by the
// calling binary.
const LoggingType = LogTypeDefault
