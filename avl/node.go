// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // leaf = 1
	size   int         // nodes in this sub-tree including this one
}

// create a new leaf
func newNode(key Item, value interface{}) *Node {
	return &Node{
		key:    key,
		value:  value,
		height: 1,
		size:   1,
	}
}

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// node count of a possibly absent sub-tree
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute the cached height and size from the children
func (p *Node) update() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Height - height of the sub-tree rooted at this node, a leaf is 1
func (p *Node) Height() int {
	return p.height
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node) Size() int {
	return p.size
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if 0 == depth {
		nodes = []*Node{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
