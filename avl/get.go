// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// At - index to specific item in key order, 0 is the lowest key
func (tree *Tree) At(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return at(index, tree.root)
}

func at(index int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	nl := size(tree.left)

	if index < nl {
		return at(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return at(index-nl-1, tree.right)
	}
	return tree
}
