// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// logging defaults
const (
	defaultLogDirectory = "log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// DefaultLogging - initial logging setup for a program, the log file
// is named after the program
func DefaultLogging(program string) logger.Configuration {
	return logger.Configuration{
		Directory: defaultLogDirectory,
		File:      filepath.Base(program) + ".log",
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Levels: LoglevelMap{
			logger.DefaultTag: "critical",
		},
	}
}

// EnsureAbsolute - make a path absolute relative to directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ResolveLogging - make the log directory absolute relative to
// directory and create it if necessary
//
// the log file must be a plain name
func ResolveLogging(directory string, logging *logger.Configuration) error {
	switch filepath.Dir(logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}
	logging.Directory = EnsureAbsolute(directory, logging.Directory)
	return os.MkdirAll(logging.Directory, 0700)
}
