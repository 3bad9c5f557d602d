// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// IsAVLTree - check key order against each node's children and that
// no node is out of balance
//
// an empty tree is not considered valid
func (tree *Tree) IsAVLTree() bool {
	if nil == tree.root {
		return false
	}
	return isAVL(tree.root)
}

func isAVL(p *Node) bool {
	if nil == p {
		return true
	}
	if nil != p.left && p.left.key.Compare(p.key) >= 0 {
		return false
	}
	if nil != p.right && p.right.key.Compare(p.key) <= 0 {
		return false
	}
	diff := height(p.left) - height(p.right)
	if diff < -1 || diff > 1 {
		return false
	}
	return isAVL(p.left) && isAVL(p.right)
}

// CheckHeights - verify the cached height of every node
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the computed height
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		fmt.Printf("height fail at node: %v  actual: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckCounts - verify the node count of every sub-tree and the tree total
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	if ok && n != tree.count {
		fmt.Printf("count fail: tree: %d  nodes: %d\n", tree.count, n)
		return false
	}
	return ok
}

// internal: returns the computed count
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	n := 1 + nl + nr
	if n != p.size {
		fmt.Printf("size fail at node: %v  actual: %d  expected: %d\n", p.key, p.size, n)
		return 0, false
	}
	return n, true
}
