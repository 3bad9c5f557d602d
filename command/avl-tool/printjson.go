// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

// a node as JSON
type pair struct {
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

// convert nodes for output, nil nodes are skipped
func pairs(nodes ...*avl.Node) []pair {
	result := make([]pair, 0, len(nodes))
	for _, p := range nodes {
		if nil != p {
			result = append(result, pair{Key: p.Key(), Value: p.Value()})
		}
	}
	return result
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
