// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateWithoutChild(t *testing.T) {
	p := newNode(IntKey(1), "a")

	assert.Panics(t, func() { leftRotate(p) }, "left rotate without right child")
	assert.Panics(t, func() { rightRotate(p) }, "right rotate without left child")
}

// a difference of three can never be produced by a single insert or
// delete so it must abort
func TestRotateImpossibleDifference(t *testing.T) {
	p := newNode(IntKey(10), "j")
	p.left = newNode(IntKey(5), "e")
	p.left.height = 3
	p.update()

	assert.Panics(t, func() { rotateIfNecessary(p) }, "difference of 3")
}

func TestRotateHeights(t *testing.T) {
	// 1 → 2 → 3 chain to the right
	p := newNode(IntKey(1), "a")
	p.right = newNode(IntKey(2), "b")
	p.right.right = newNode(IntKey(3), "c")
	p.right.update()
	p.update()

	r := rotateIfNecessary(p)
	assert.Equal(t, IntKey(2), r.key, "new root")
	assert.Equal(t, 2, r.height, "root height")
	assert.Equal(t, 3, r.size, "root size")
	assert.Equal(t, 1, r.left.height, "left height")
	assert.Equal(t, 1, r.left.size, "left size")
	assert.Nil(t, r.left.right, "old root kept a child")
}

func TestRemoveMin(t *testing.T) {
	tree := New()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(IntKey(i), i)
	}
	remainder, min := removeMin(tree.root)
	assert.Equal(t, IntKey(1), min.key, "minimum")
	assert.Nil(t, min.right, "minimum still linked")
	assert.True(t, isAVL(remainder), "remainder not balanced")
	assert.Equal(t, 6, remainder.size, "remainder size")
}
