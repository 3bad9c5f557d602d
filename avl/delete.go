// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or nil and false if
// the key was not present
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	value := interface{}(nil)
	removed := false
	tree.root, value, removed = deleteNode(tree.root, key)
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
func deleteNode(p *Node, key Item) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}
	value := interface{}(nil)
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, value, removed = deleteNode(p.left, key)
	case -1: // p.key < key
		p.right, value, removed = deleteNode(p.right, key)
	default: // found: delete p
		return deleteRoot(p), p.value, true
	}
	if !removed {
		return p, nil, false
	}
	p.update()
	return rotateIfNecessary(p), value, true
}

// remove p from its own sub-tree, returns the replacement
func deleteRoot(p *Node) *Node {
	switch {
	case nil == p.left && nil == p.right:
		return nil
	case nil == p.right:
		return p.left
	case nil == p.left:
		return p.right
	}

	// both sides present: the lowest node of the right side
	// replaces p
	remainder, q := removeMin(p.right)
	q.left = p.left
	q.right = remainder
	q.update()
	return rotateIfNecessary(q)
}

// detach the lowest node of a sub-tree
// returns the remaining (rebalanced) sub-tree and the detached node
func removeMin(p *Node) (*Node, *Node) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p
	}
	remainder, min := removeMin(p.left)
	p.left = remainder
	p.update()
	return rotateIfNecessary(p), min
}
