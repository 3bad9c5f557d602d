// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single left rotation: the right child becomes the sub-tree root
//
//     p              r
//    / \            / \
//   a   r    →     p   c
//      / \        / \
//     b   c      a   b
func leftRotate(p *Node) *Node {
	r := p.right
	if nil == r {
		fault.Panicf("avl: left rotate at key: %v without a right child", p.key)
	}
	p.right = r.left
	r.left = p

	// p is now lower than r so must be done first
	p.update()
	r.update()
	return r
}

// single right rotation: the left child becomes the sub-tree root
func rightRotate(p *Node) *Node {
	l := p.left
	if nil == l {
		fault.Panicf("avl: right rotate at key: %v without a left child", p.key)
	}
	p.left = l.right
	l.right = p

	p.update()
	l.update()
	return l
}

// restore the balance of a node whose height has just been updated
// returns the possibly new sub-tree root
func rotateIfNecessary(p *Node) *Node {
	diff := height(p.left) - height(p.right)
	switch diff {
	case -1, 0, +1:
		return p

	case +2: // left heavy
		if height(p.left.left) < height(p.left.right) {
			// double LR rotation
			p.left = leftRotate(p.left)
		}
		return rightRotate(p)

	case -2: // right heavy
		if height(p.right.right) < height(p.right.left) {
			// double RL rotation
			p.right = rightRotate(p.right)
		}
		return leftRotate(p)

	default:
		fault.Panicf("avl: balance difference: %d at key: %v", diff, p.key)
	}
	return p
}
