// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// supported key types
const (
	intKeys    = "int"
	stringKeys = "string"
)

// convert a command line or data file key
func parseKey(keyType string, s string) (avl.Item, error) {
	switch keyType {
	case intKeys:
		n, err := strconv.Atoi(s)
		if nil != err {
			return nil, err
		}
		return avl.IntKey(n), nil
	case stringKeys:
		return avl.StringKey(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// read "key value" lines into a new tree
//
// blank lines and lines starting with '#' are ignored, the value is
// the remainder of the line after the key and may be empty; a later
// line overwrites the value of an earlier one with the same key
func loadTree(r io.Reader, keyType string) (*avl.Tree, error) {
	tree := avl.New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		k := line
		value := ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			k = line[:i]
			value = strings.TrimSpace(line[i+1:])
		}
		key, err := parseKey(keyType, k)
		if nil != err {
			return nil, fault.ErrInvalidDataLine
		}
		tree.Insert(key, value)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return tree, nil
}

func loadFile(fileName string, keyType string) (*avl.Tree, error) {
	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return nil, fault.ErrDataFileNotFound
	}
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return loadTree(f, keyType)
}
