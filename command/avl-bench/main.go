// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const usage = "usage: %s [--help] [--version] [--quiet] [--verbose] [--config-file=FILE]" +
	" [--count=N] [--random] [--seed=N] [--readers=N] [--rate=R] [--baseline] [--csv=FILE]"

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "random", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "readers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'R'},
		{Long: "rate", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "baseline", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "csv", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message(usage, program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile, program)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := applyOptions(theConfiguration, options); nil != err {
		exitwithstatus.Message("%s: option error: %s", program, err)
	}

	if err := theConfiguration.validate(); nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	results, err := runBenchmark(theConfiguration, os.Stderr, quiet, logger.New("bench"))
	if nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark error: %s", program, err)
	}

	printResults(os.Stdout, theConfiguration.Count, results)

	if "" != theConfiguration.CSVFile {
		if err := writeCSV(theConfiguration.CSVFile, theConfiguration, results); nil != err {
			log.Errorf("csv: %q  error: %s", theConfiguration.CSVFile, err)
			exitwithstatus.Message("%s: write csv: %q  error: %s", program, theConfiguration.CSVFile, err)
		}
		log.Infof("results appended to: %q", theConfiguration.CSVFile)
	}
}

// command line options override the configuration file
func applyOptions(config *Configuration, options map[string][]string) error {
	var err error
	if n := len(options["count"]); n > 0 {
		config.Count, err = strconv.Atoi(options["count"][n-1])
		if nil != err {
			return err
		}
	}
	if len(options["random"]) > 0 {
		config.Random = true
	}
	if n := len(options["seed"]); n > 0 {
		config.Seed, err = strconv.ParseInt(options["seed"][n-1], 10, 64)
		if nil != err {
			return err
		}
	}
	if n := len(options["readers"]); n > 0 {
		config.Readers, err = strconv.Atoi(options["readers"][n-1])
		if nil != err {
			return err
		}
	}
	if n := len(options["rate"]); n > 0 {
		config.Rate, err = strconv.ParseFloat(options["rate"][n-1], 64)
		if nil != err {
			return err
		}
	}
	if len(options["baseline"]) > 0 {
		config.Baseline = true
	}
	if n := len(options["csv"]); n > 0 {
		config.CSVFile = options["csv"][n-1]
	}
	return nil
}
