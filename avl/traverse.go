// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// TraverseIterator - yields a fixed sequence of nodes collected when
// the iterator was created
type TraverseIterator struct {
	queue []*Node
}

// Next - the next node in the sequence or nil when exhausted
func (it *TraverseIterator) Next() *Node {
	if 0 == len(it.queue) {
		return nil
	}
	p := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]
	return p
}

// Collect - return all remaining nodes, exhausting the iterator
func (it *TraverseIterator) Collect() []*Node {
	nodes := it.queue
	it.queue = nil
	return nodes
}

// PreorderIter - node, left, right
func (tree *Tree) PreorderIter() *TraverseIterator {
	buffer := make([]*Node, 0, tree.count)
	return &TraverseIterator{queue: preOrder(tree.root, buffer)}
}

// InorderIter - left, node, right; i.e. ascending key order
func (tree *Tree) InorderIter() *TraverseIterator {
	buffer := make([]*Node, 0, tree.count)
	return &TraverseIterator{queue: inOrder(tree.root, buffer)}
}

// PostorderIter - left, right, node
func (tree *Tree) PostorderIter() *TraverseIterator {
	buffer := make([]*Node, 0, tree.count)
	return &TraverseIterator{queue: postOrder(tree.root, buffer)}
}

// LevelorderIter - breadth first, each level from left to right
func (tree *Tree) LevelorderIter() *TraverseIterator {
	buffer := make([]*Node, 0, tree.count)
	return &TraverseIterator{queue: levelOrder(tree.root, buffer)}
}

func preOrder(p *Node, buffer []*Node) []*Node {
	if nil == p {
		return buffer
	}
	buffer = append(buffer, p)
	buffer = preOrder(p.left, buffer)
	return preOrder(p.right, buffer)
}

func inOrder(p *Node, buffer []*Node) []*Node {
	if nil == p {
		return buffer
	}
	buffer = inOrder(p.left, buffer)
	buffer = append(buffer, p)
	return inOrder(p.right, buffer)
}

func postOrder(p *Node, buffer []*Node) []*Node {
	if nil == p {
		return buffer
	}
	buffer = postOrder(p.left, buffer)
	buffer = postOrder(p.right, buffer)
	return append(buffer, p)
}

// the output buffer doubles as the queue: every node appended is
// visited later when the scan reaches it
func levelOrder(p *Node, buffer []*Node) []*Node {
	if nil == p {
		return buffer
	}
	start := len(buffer)
	buffer = append(buffer, p)
	for i := start; i < len(buffer); i += 1 {
		n := buffer[i]
		if nil != n.left {
			buffer = append(buffer, n.left)
		}
		if nil != n.right {
			buffer = append(buffer, n.right)
		}
	}
	return buffer
}
