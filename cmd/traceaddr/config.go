// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The zcash-address-wasm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/nuttycom/zcash-address-wasm/internal/cfgutil"
)

const (
	defaultConfigFilename = "traceaddr.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "traceaddr.log"
	defaultNet            = "main"
)

var (
	traceaddrHomeDir  = btcutil.AppDataDir("traceaddr", false)
	defaultConfigFile = filepath.Join(traceaddrHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(traceaddrHomeDir, defaultLogDirname)
)

type config struct {
	// General application behavior
	ConfigFile  *cfgutil.ExplicitString `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool                    `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string                  `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir      *cfgutil.ExplicitString `long:"logdir" description:"Also write log output to a rotating file in this directory"`

	Create       createCommand       `command:"create" description:"Attach an expiry time to an address"`
	ExpiryHeight expiryHeightCommand `command:"expiryheight" description:"Print the expiry height of an address"`
	ExpiryTime   expiryTimeCommand   `command:"expirytime" description:"Print the expiry time of an address"`
	ToP2PKH      toP2PKHCommand      `command:"top2pkh" description:"Print the plain transparent address of an address"`
	Inspect      inspectCommand      `command:"inspect" description:"Describe the contents of any Zcash address"`
}

// defaultConfig returns a config populated with the application defaults.
func defaultConfig() config {
	return config{
		ConfigFile: cfgutil.NewExplicitString(defaultConfigFile),
		DebugLevel: defaultLogLevel,
		LogDir:     cfgutil.NewExplicitString(defaultLogDir),
		Create: createCommand{
			Net:    defaultNet,
			Height: cfgutil.NewExplicitUint32(0),
		},
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(traceaddrHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but they variables can still be expanded via POSIX-style
	// $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in traceaddr functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.  The returned parser identifies the selected command through
// its Active field.
func loadConfig(args []string) (*config, *flags.Parser, []string, error) {
	cfg := defaultConfig()

	// A config file in the current directory takes precedence.
	exists, err := cfgutil.FileExists(defaultConfigFilename)
	if err != nil {
		return nil, nil, nil, err
	}
	if exists {
		cfg.ConfigFile.Value = defaultConfigFilename
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Command options are not
	// known to this parser and are skipped.
	preCfg := defaultConfig()
	preCfg.ConfigFile.Value = cfg.ConfigFile.Value
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	preParser.SubcommandsOptional = true
	_, _ = preParser.ParseArgs(args)

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Println("traceaddr version", version())
		os.Exit(0)
	}

	// Load additional config from file.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile.Value)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			parser.WriteHelp(os.Stderr)
			return nil, nil, nil, err
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Only write a log file when a log directory was requested on the
	// command line or in the config file.
	if cfg.LogDir.ExplicitlySet() {
		logDir := cleanAndExpandPath(cfg.LogDir.Value)
		err := initLogRotator(filepath.Join(logDir, defaultLogFilename))
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// Parse, validate, and set debug log level(s).
	setLogLevels(defaultLogLevel)
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, nil, nil, err
	}

	// Warn about missing config file after the final command line parse
	// succeeds.  This prevents the warning on help messages and invalid
	// options.  A missing default config file is expected.
	if configFileError != nil && cfg.ConfigFile.ExplicitlySet() {
		log.Warnf("%v", configFileError)
	}

	return &cfg, parser, remainingArgs, nil
}
