//go:build !trace && !debug
// +build !trace,!debug

package build

// LogLevel specifies the default log level.
var LogLevel = "info"
