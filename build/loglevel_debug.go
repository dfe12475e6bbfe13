//go:build debug && !trace
// +build debug,!trace

package build

// LogLevel specifies the log level for builds tagged with debug.
var LogLevel = "debug"
