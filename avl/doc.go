// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding key/value pairs in key
// order
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Read only calls (Get, Successor, iterators, …) may
//       share a read lock, any Insert or Delete needs the write lock.
//
// Each node caches the height of its sub-tree and the number of
// nodes in it.  Insert and delete are recursive and return the new
// root of the sub-tree they were given; on the way back up every
// node on the path recomputes its height and is rotated if the two
// sides differ by two.
//
// An insert with a key that is already present overwrites the value
// and leaves the shape of the tree unchanged.
//
// Iteration: a RangeIterator walks successor links lazily between
// two Bounds; a TraverseIterator returns the nodes in pre-, in-,
// post- or level-order.  Do not mutate a tree while iterating it,
// this is not detected and the results are undefined.
package avl
