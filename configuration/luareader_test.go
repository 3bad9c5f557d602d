// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type testConfiguration struct {
	Count   int                  `gluamapper:"count"`
	Random  bool                 `gluamapper:"random"`
	Name    string               `gluamapper:"name"`
	Logging logger.Configuration `gluamapper:"logging"`
}

const testSource = `
local M = {}
M.count = 1000
M.random = true
M.name = "bench-" .. suffix
M.logging = {
    directory = "log",
    file = "bench.log",
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func TestParseString(t *testing.T) {
	config := &testConfiguration{
		Count:   10,
		Logging: configuration.DefaultLogging("bench"),
	}
	err := configuration.ParseConfigurationString(testSource, config, map[string]string{"suffix": "one"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, 1000, config.Count, "wrong count")
	assert.True(t, config.Random, "wrong random")
	assert.Equal(t, "bench-one", config.Name, "wrong name")
	assert.Equal(t, "bench.log", config.Logging.File, "wrong log file")
	assert.Equal(t, 3, config.Logging.Count, "wrong log count")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestParseDefaultsKept(t *testing.T) {
	config := &testConfiguration{
		Count:   10,
		Name:    "unchanged",
		Logging: configuration.DefaultLogging("bench"),
	}
	err := configuration.ParseConfigurationString("return { random = true }", config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, 10, config.Count, "default count overwritten")
	assert.Equal(t, "unchanged", config.Name, "default name overwritten")
	assert.Equal(t, "bench.log", config.Logging.File, "default log file overwritten")
}

func TestParseNotATable(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString("return 42", config, nil)
	assert.Equal(t, fault.ErrConfigurationNotATable, err, "wrong error")
}

func TestParseNotAStruct(t *testing.T) {
	n := 0
	err := configuration.ParseConfigurationString("return {}", &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")

	err = configuration.ParseConfigurationString("return {}", testConfiguration{}, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestParseSyntaxError(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString("return {", config, nil)
	assert.NotNil(t, err, "expected a syntax error")
}

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(testSource), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config, map[string]string{"suffix": "file"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "bench-file", config.Name, "wrong name")

	err = configuration.ResolveLogging(dir, &config.Logging)
	assert.Nil(t, err, "resolve error")
	assert.Equal(t, filepath.Join(dir, "log"), config.Logging.Directory, "wrong log directory")

	info, err := os.Stat(config.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestResolveLoggingPlainName(t *testing.T) {
	logging := configuration.DefaultLogging("bench")
	logging.File = "sub/bench.log"
	err := configuration.ResolveLogging(os.TempDir(), &logging)
	assert.Equal(t, fault.ErrNotPlainFileName, err, "wrong error")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/a/b/c", configuration.EnsureAbsolute("/a/b", "c"), "relative")
	assert.Equal(t, "/x/y", configuration.EnsureAbsolute("/a/b", "/x/y"), "absolute")
	assert.Equal(t, "/a/c", configuration.EnsureAbsolute("/a/b", "../c"), "parent")
}
