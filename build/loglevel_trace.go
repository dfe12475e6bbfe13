//go:build trace
// +build trace

package build

// LogLevel specifies the log level for builds tagged with trace.
var LogLevel = "trace"
