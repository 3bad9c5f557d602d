// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
)

// the tree only ever asks the stored key to compare itself against
// the key being inserted or looked up, once per level
func TestCompareCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m1 := mocks.NewMockItem(ctl)
	m2 := mocks.NewMockItem(ctl)
	m3 := mocks.NewMockItem(ctl)
	probe := mocks.NewMockItem(ctl)

	// m1 < m2 < m3 and m1 < probe < m2
	m1.EXPECT().Compare(gomock.Any()).Return(-1).Times(3)
	gomock.InOrder(
		m2.EXPECT().Compare(gomock.Any()).Return(-1), // insert m3
		m2.EXPECT().Compare(gomock.Any()).Return(+1), // look up probe
	)

	tree := avl.New()
	assert.True(t, tree.Insert(m1, "one"), "insert m1")
	assert.True(t, tree.Insert(m2, "two"), "insert m2")
	assert.True(t, tree.Insert(m3, "three"), "insert m3")

	// the right-right insert rotated m2 to the root
	assert.True(t, avl.Item(m2) == tree.Root().Key(), "m2 is not the root")
	assert.Equal(t, 2, tree.Root().Height(), "root height")
	assert.Equal(t, 3, tree.Count(), "count")

	assert.Nil(t, tree.GetPair(probe), "probe found")
}

// a key that compares equal to a stored key replaces its value
// without any further comparison
func TestCompareEqual(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	stored := mocks.NewMockItem(ctl)
	other := mocks.NewMockItem(ctl)

	stored.EXPECT().Compare(other).Return(0).Times(2)

	tree := avl.New()
	tree.Insert(stored, "first")
	assert.False(t, tree.Insert(other, "second"), "equal key added a node")

	v, ok := tree.Get(other)
	assert.True(t, ok, "get")
	assert.Equal(t, "second", v, "value not replaced")
	assert.True(t, avl.Item(stored) == tree.Root().Key(), "stored key replaced")
}
