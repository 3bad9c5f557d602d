// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
//
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(tree.root, key, value)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func insert(p *Node, key Item, value interface{}) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(p.left, key, value)
	case -1: // p.key < key
		p.right, added = insert(p.right, key, value)
	default:
		p.value = value
		return p, false
	}
	if !added {
		return p, false
	}
	p.update()
	return rotateIfNecessary(p), true
}
