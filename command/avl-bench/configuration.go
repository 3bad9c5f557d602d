// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults
const (
	defaultCount = 10000 // same as the classic insert benchmark
	defaultSeed  = 1
)

// Configuration - benchmark settings, all may be overridden by
// command line options
type Configuration struct {
	Count    int                  `gluamapper:"count" json:"count"`
	Random   bool                 `gluamapper:"random" json:"random"`
	Seed     int64                `gluamapper:"seed" json:"seed"`
	Readers  int                  `gluamapper:"readers" json:"readers"`
	Rate     float64              `gluamapper:"rate" json:"rate"`         // lookups/second for each reader, 0 => unlimited
	Baseline bool                 `gluamapper:"baseline" json:"baseline"` // also time memdb and go-cache
	CSVFile  string               `gluamapper:"csv_file" json:"csv_file"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string, program string) (*Configuration, error) {

	options := &Configuration{
		Count:    defaultCount,
		Random:   false,
		Seed:     defaultSeed,
		Readers:  0,
		Rate:     0,
		Baseline: false,
		CSVFile:  "",
		Logging:  configuration.DefaultLogging(program),
	}

	directory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
			return nil, fault.ErrMissingConfigurationFile
		}

		// relative paths are from the configuration file
		directory, _ = filepath.Split(configurationFileName)

		variables := map[string]string{
			"program": filepath.Base(program),
		}
		if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
			return nil, err
		}
	}

	if "" != options.CSVFile {
		options.CSVFile = configuration.EnsureAbsolute(directory, options.CSVFile)
	}

	if err := configuration.ResolveLogging(directory, &options.Logging); nil != err {
		return nil, err
	}

	return options, nil
}

// check values are usable
func (c *Configuration) validate() error {
	if c.Count <= 0 {
		return fault.ErrInvalidCount
	}
	if c.Readers < 0 {
		return fault.ErrInvalidReaders
	}
	if c.Rate < 0 {
		return fault.ErrInvalidRate
	}
	return nil
}
