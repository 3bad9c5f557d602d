// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFprint(t *testing.T) {
	tree := makeTree(3, 2, 1, 4)

	var buffer bytes.Buffer
	depth := tree.Fprint(&buffer, false)
	assert.Equal(t, 3, depth, "depth")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines), "one line per node")

	// right side is printed uppermost
	expected := []string{
		"              /------+ 4",
		"       /------+ 3",
		"|------+ 2",
		"       \\------+ 1",
	}
	assert.Equal(t, expected, lines, "tree layout")

	buffer.Reset()
	tree.Fprint(&buffer, true)
	assert.Contains(t, buffer.String(), "2 → b -1/h:3/n:4", "root detail")
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5, 6, 7)
	root := tree.Root()

	assert.Equal(t, []int{4}, keysOf(root.GetChildrenByDepth(0)), "depth 0")
	assert.Equal(t, []int{2, 6}, keysOf(root.GetChildrenByDepth(1)), "depth 1")
	assert.Equal(t, []int{1, 3, 5, 7}, keysOf(root.GetChildrenByDepth(2)), "depth 2")
	assert.Empty(t, root.GetChildrenByDepth(3), "depth 3")
}
