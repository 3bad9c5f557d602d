// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

// shared state: a tree that is only read while the processes run
type shared struct {
	sync.RWMutex
	tree    *avl.Tree
	lookups counter.Counter
}

type reader struct {
	offset  int
	stopped bool
}

const treeSize = 100

func (r *reader) Run(args interface{}, shutdown <-chan struct{}) {

	s := args.(*shared)

	i := r.offset
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		s.RLock()
		s.tree.Get(avl.IntKey(i % treeSize))
		s.RUnlock()
		s.lookups.Increment()
		i += 1
		time.Sleep(time.Millisecond)
	}

	// test for the stop operation
	r.stopped = true
}

func TestBackground(t *testing.T) {

	s := &shared{
		tree: avl.New(),
	}
	for i := 0; i < treeSize; i += 1 {
		s.tree.Insert(avl.IntKey(i), i)
	}

	proc1 := &reader{offset: 0}
	proc2 := &reader{offset: 50}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, s)
	time.Sleep(50 * time.Millisecond)

	// a writer may interleave with the readers under the lock
	s.Lock()
	s.tree.Insert(avl.IntKey(treeSize), treeSize)
	s.Unlock()

	time.Sleep(20 * time.Millisecond)
	p.Stop()

	if !proc1.stopped || !proc2.stopped {
		t.Fatalf("stop failed: stopped: %v, %v", proc1.stopped, proc2.stopped)
	}
	if s.lookups.IsZero() {
		t.Fatalf("no lookups were made")
	}
	if !s.tree.IsAVLTree() {
		t.Fatalf("tree is not valid")
	}

	// stopping again is harmless
	p.Stop()
}

func TestEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Stop()

	var n *background.T
	n.Stop()
}
