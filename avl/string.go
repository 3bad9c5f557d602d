// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
)

// rendering of an absent child
const emptyChild = "Ø"

// String - compact single line form of the whole tree:
//   [K: key, V: value, L: left, R: right]
// with absent children as Ø; an empty tree is "None"
func (tree *Tree) String() string {
	if nil == tree.root {
		return "None"
	}
	return tree.root.String()
}

// String - compact form of a sub-tree
func (p *Node) String() string {
	var b strings.Builder
	writeNode(&b, p)
	return b.String()
}

func writeNode(b *strings.Builder, p *Node) {
	if nil == p {
		b.WriteString(emptyChild)
		return
	}
	fmt.Fprintf(b, "[K: %v, V: %v, L: ", p.key, p.value)
	writeNode(b, p.left)
	b.WriteString(", R: ")
	writeNode(b, p.right)
	b.WriteString("]")
}
