// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// fetch the loaded data set by the Before hook
func getMetadata(c *cli.Context) (*metadata, error) {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok || nil == m.tree {
		return nil, fault.ErrDataFileNotFound
	}
	return m, nil
}

// the single key argument of a command
func keyArgument(c *cli.Context, m *metadata) (avl.Item, error) {
	if 1 != c.NArg() {
		return nil, fault.ErrMissingKey
	}
	return parseKey(m.keyType, c.Args().Get(0))
}

func runPrint(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	depth := m.tree.Fprint(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "count: %d  depth: %d\n", m.tree.Count(), depth)
	}
	return nil
}

func runDump(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	fmt.Fprintln(m.w, m.tree.String())
	return nil
}

func runGet(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	key, err := keyArgument(c, m)
	if nil != err {
		return err
	}
	p := m.tree.GetPair(key)
	if nil == p {
		return fault.ErrKeyNotFound
	}
	return printJson(m.w, pairs(p)[0])
}

func runSuccessor(c *cli.Context) error {
	return neighbour(c, (*avl.Tree).Successor)
}

func runPredecessor(c *cli.Context) error {
	return neighbour(c, (*avl.Tree).Predecessor)
}

// successor or predecessor, prints null if there is none
func neighbour(c *cli.Context, find func(*avl.Tree, avl.Item) *avl.Node) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	key, err := keyArgument(c, m)
	if nil != err {
		return err
	}
	p := find(m.tree, key)
	if nil == p {
		return printJson(m.w, nil)
	}
	return printJson(m.w, pairs(p)[0])
}

// convert "included", "excluded" or blank key to a bound
// an explicit kind without a key is an error
func makeBound(m *metadata, s string, kind string, kindSet bool) (avl.Bound, error) {
	if "" == s {
		if kindSet {
			return avl.Unbounded(), fault.ErrBoundKeyMissing
		}
		return avl.Unbounded(), nil
	}
	key, err := parseKey(m.keyType, s)
	if nil != err {
		return avl.Unbounded(), err
	}
	switch kind {
	case "", "included", "i":
		return avl.Included(key), nil
	case "excluded", "e":
		return avl.Excluded(key), nil
	default:
		return avl.Unbounded(), fault.ErrInvalidBound
	}
}

func runRange(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	lower, err := makeBound(m, c.String("from"), c.String("from-kind"), c.IsSet("from-kind"))
	if nil != err {
		return err
	}
	upper, err := makeBound(m, c.String("to"), c.String("to-kind"), c.IsSet("to-kind"))
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "range: %s .. %s\n", lower, upper)
	}
	return printJson(m.w, pairs(m.tree.RangeIter(lower, upper).Collect()...))
}

func runTraverse(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	var it *avl.TraverseIterator
	switch c.String("order") {
	case "pre":
		it = m.tree.PreorderIter()
	case "in", "":
		it = m.tree.InorderIter()
	case "post":
		it = m.tree.PostorderIter()
	case "level":
		it = m.tree.LevelorderIter()
	default:
		return fault.ErrInvalidOrder
	}
	return printJson(m.w, pairs(it.Collect()...))
}

// summary of the consistency checks
type checkReply struct {
	File    string `json:"file"`
	Count   int    `json:"count"`
	Height  int    `json:"height"`
	AVL     bool   `json:"avl"`
	Heights bool   `json:"heights"`
	Counts  bool   `json:"counts"`
}

func checkTree(file string, tree *avl.Tree) checkReply {
	height := 0
	if root := tree.Root(); nil != root {
		height = root.Height()
	}
	return checkReply{
		File:    file,
		Count:   tree.Count(),
		Height:  height,
		AVL:     tree.IsAVLTree(),
		Heights: tree.CheckHeights(),
		Counts:  tree.CheckCounts(),
	}
}

func runCheck(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	reply := checkTree(m.file, m.tree)
	if err := printJson(m.w, reply); nil != err {
		return err
	}

	// an empty tree is reported but is not an error
	if 0 != reply.Count && !(reply.AVL && reply.Heights && reply.Counts) {
		return fault.ErrTreeNotBalanced
	}
	return nil
}
