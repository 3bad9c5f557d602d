// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// GetPair - find the node holding a specific key, nil if absent
//
// the node remains valid until the next Insert or Delete
func (tree *Tree) GetPair(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - the value stored for a key
func (tree *Tree) Get(key Item) (interface{}, bool) {
	p := tree.GetPair(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// GetOr - the value stored for a key or the default if it is absent
func (tree *Tree) GetOr(key Item, def interface{}) interface{} {
	if p := tree.GetPair(key); nil != p {
		return p.value
	}
	return def
}

// Contains - true if the key is present
func (tree *Tree) Contains(key Item) bool {
	return nil != tree.GetPair(key)
}

// Search - find a specific item and its in-order index
//
// returns nil, -1 if not found
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	switch tree.key.Compare(key) {
	case +1: // tree.key > key
		return search(key, tree.left, index)
	case -1: // tree.key < key
		return search(key, tree.right, index+size(tree.left)+1)
	default:
		return tree, index + size(tree.left)
	}
}
