// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// MinPair - return the node with the lowest key value
func (tree *Tree) MinPair() *Node {
	return tree.root.min()
}

// internal: lowest node in a sub-tree
func (tree *Node) min() *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.left {
		tree = tree.left
	}
	return tree
}

// MaxPair - return the node with the highest key value
func (tree *Tree) MaxPair() *Node {
	return tree.root.max()
}

// internal: highest node in a sub-tree
func (tree *Node) max() *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.right {
		tree = tree.right
	}
	return tree
}

// Successor - the node with the smallest key strictly greater than
// key, or nil if there is none.  The key need not be in the tree.
func (tree *Tree) Successor(key Item) *Node {
	return successor(tree.root, key)
}

func successor(p *Node, key Item) *Node {
	if nil == p {
		return nil
	}
	switch p.key.Compare(key) {
	case +1: // p.key > key: p is a candidate, a closer one may be left
		if s := successor(p.left, key); nil != s {
			return s
		}
		return p
	case -1: // p.key < key
		return successor(p.right, key)
	default:
		return p.right.min()
	}
}

// Predecessor - the node with the largest key strictly less than
// key, or nil if there is none.  The key need not be in the tree.
func (tree *Tree) Predecessor(key Item) *Node {
	return predecessor(tree.root, key)
}

func predecessor(p *Node, key Item) *Node {
	if nil == p {
		return nil
	}
	switch p.key.Compare(key) {
	case -1: // p.key < key: p is a candidate, a closer one may be right
		if s := predecessor(p.right, key); nil != s {
			return s
		}
		return p
	case +1: // p.key > key
		return predecessor(p.left, key)
	default:
		return p.left.max()
	}
}
