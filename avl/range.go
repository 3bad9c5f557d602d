// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// BoundKind - how a range end point treats its key
type BoundKind int

// the possible end point types
const (
	UnboundedKind BoundKind = iota
	IncludedKind  BoundKind = iota
	ExcludedKind  BoundKind = iota
)

// Bound - one end of a range
type Bound struct {
	kind BoundKind
	key  Item
}

// Unbounded - no limit on this end
func Unbounded() Bound {
	return Bound{kind: UnboundedKind}
}

// Included - the range includes the key
func Included(key Item) Bound {
	return Bound{kind: IncludedKind, key: key}
}

// Excluded - the range stops short of the key
func Excluded(key Item) Bound {
	return Bound{kind: ExcludedKind, key: key}
}

// Kind - the type of end point
func (b Bound) Kind() BoundKind {
	return b.kind
}

// Key - the end point key, nil for Unbounded
func (b Bound) Key() Item {
	return b.key
}

func (b Bound) String() string {
	switch b.kind {
	case IncludedKind:
		return fmt.Sprintf("Included(%v)", b.key)
	case ExcludedKind:
		return fmt.Sprintf("Excluded(%v)", b.key)
	default:
		return "Unbounded"
	}
}

// RangeIterator - lazily walks the keys between two bounds in
// ascending order, one successor lookup per call to Next
type RangeIterator struct {
	tree    *Tree
	lower   Bound
	upper   Bound
	prev    Item
	started bool
}

// RangeIter - iterate the nodes whose keys lie between lower and upper
func (tree *Tree) RangeIter(lower Bound, upper Bound) *RangeIterator {
	return &RangeIterator{
		tree:  tree,
		lower: lower,
		upper: upper,
	}
}

// Next - the next node in the range or nil when there are no more
//
// once nil has been returned all further calls also return nil
func (it *RangeIterator) Next() *Node {
	var p *Node
	if !it.started {
		p = it.first()
	} else {
		p = it.tree.Successor(it.prev)
	}
	if nil == p || !it.belowUpper(p.key) {
		return nil
	}
	it.started = true
	it.prev = p.key
	return p
}

// Collect - return all remaining nodes, exhausting the iterator
func (it *RangeIterator) Collect() []*Node {
	nodes := []*Node{}
	for p := it.Next(); nil != p; p = it.Next() {
		nodes = append(nodes, p)
	}
	return nodes
}

// resolve the lower bound to the first candidate node
func (it *RangeIterator) first() *Node {
	switch it.lower.kind {
	case IncludedKind:
		if p := it.tree.GetPair(it.lower.key); nil != p {
			return p
		}
		return it.tree.Successor(it.lower.key)
	case ExcludedKind:
		return it.tree.Successor(it.lower.key)
	default:
		return it.tree.MinPair()
	}
}

// check a candidate key against the upper bound
func (it *RangeIterator) belowUpper(key Item) bool {
	switch it.upper.kind {
	case IncludedKind:
		return key.Compare(it.upper.key) <= 0
	case ExcludedKind:
		return key.Compare(it.upper.key) < 0
	default:
		return true
	}
}
