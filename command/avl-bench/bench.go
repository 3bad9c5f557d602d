// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// result of one timed phase
type result struct {
	Phase      string        `json:"phase"`
	Operations uint64        `json:"operations"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Rate - operations per second
func (r result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Operations) / r.Elapsed.Seconds()
}

// the tree as seen by the concurrent readers
type sharedTree struct {
	sync.RWMutex
	tree    *avl.Tree
	keys    []avl.Item
	lookups counter.Counter
}

// optional progress display, nil when quiet
type progress struct {
	bar  *progressbar.ProgressBar
	step int
}

func newProgress(w io.Writer, quiet bool, total int, description string) *progress {
	if quiet {
		return nil
	}
	step := total / 100
	if step < 1 {
		step = 1
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return &progress{
		bar:  bar,
		step: step,
	}
}

// called after item i (0 based) completes
func (p *progress) tick(i int) {
	if nil == p {
		return
	}
	if 0 == (i+1)%p.step {
		_ = p.bar.Add(p.step)
	}
}

func (p *progress) finish() {
	if nil == p {
		return
	}
	_ = p.bar.Finish()
}

// the keys in the order they will be inserted
func makeKeys(count int, random bool, seed int64) []avl.Item {
	keys := make([]avl.Item, count)
	for i := range keys {
		keys[i] = avl.IntKey(i)
	}
	if random {
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}
	return keys
}

// run all the phases and return their timings
func runBenchmark(config *Configuration, w io.Writer, quiet bool, log *logger.L) ([]result, error) {

	keys := makeKeys(config.Count, config.Random, config.Seed)
	s := &sharedTree{
		tree: avl.New(),
		keys: keys,
	}

	results := make([]result, 0, 5)

	// insert
	bar := newProgress(w, quiet, len(keys), "insert")
	start := time.Now()
	for i, key := range keys {
		s.tree.Insert(key, i)
		bar.tick(i)
	}
	results = append(results, result{Phase: "insert", Operations: uint64(len(keys)), Elapsed: time.Since(start)})
	bar.finish()
	log.Infof("inserted: %d  depth: %d", s.tree.Count(), s.tree.Root().Height())

	if err := verify(s.tree, len(keys)); nil != err {
		return nil, err
	}

	// point lookups
	bar = newProgress(w, quiet, len(keys), "lookup")
	start = time.Now()
	for i, key := range keys {
		v, ok := s.tree.Get(key)
		if !ok || v != i {
			log.Errorf("lookup: %v  returned: %v, %v", key, v, ok)
			return nil, fault.ErrKeyNotFound
		}
		bar.tick(i)
	}
	results = append(results, result{Phase: "lookup", Operations: uint64(len(keys)), Elapsed: time.Since(start)})
	bar.finish()

	// full range scan
	start = time.Now()
	n := uint64(0)
	it := s.tree.RangeIter(avl.Unbounded(), avl.Unbounded())
	for p := it.Next(); nil != p; p = it.Next() {
		n += 1
	}
	results = append(results, result{Phase: "range", Operations: n, Elapsed: time.Since(start)})
	if int(n) != len(keys) {
		log.Errorf("range: %d  expected: %d", n, len(keys))
		return nil, fault.ErrTreeNotBalanced
	}

	// delete, optionally with concurrent readers
	var readers *background.T
	if config.Readers > 0 {
		processes := make(background.Processes, config.Readers)
		for i := range processes {
			processes[i] = newLookupReader(i*len(keys)/config.Readers, config.Rate)
		}
		log.Infof("starting: %d readers  rate: %.1f", config.Readers, config.Rate)
		readers = background.Start(processes, s)
	}

	bar = newProgress(w, quiet, len(keys), "delete")
	start = time.Now()
	for i, key := range keys {
		s.Lock()
		_, removed := s.tree.Delete(key)
		s.Unlock()
		if !removed {
			readers.Stop()
			log.Errorf("delete: %v  not found", key)
			return nil, fault.ErrKeyNotFound
		}
		bar.tick(i)
	}
	elapsed := time.Since(start)
	readers.Stop()
	results = append(results, result{Phase: "delete", Operations: uint64(len(keys)), Elapsed: elapsed})
	bar.finish()

	if config.Readers > 0 {
		results = append(results, result{Phase: "concurrent-lookup", Operations: s.lookups.Uint64(), Elapsed: elapsed})
	}

	if !s.tree.IsEmpty() || 0 != s.tree.Count() {
		log.Errorf("tree not empty after delete: %d", s.tree.Count())
		return nil, fault.ErrTreeNotBalanced
	}

	if config.Baseline {
		baselines, err := runBaselines(keys, log)
		if nil != err {
			return nil, err
		}
		results = append(results, baselines...)
	}

	for _, r := range results {
		log.Infof("%s: %d in %s", r.Phase, r.Operations, r.Elapsed)
	}
	return results, nil
}

// check the tree after the insert phase
func verify(tree *avl.Tree, expected int) error {
	if expected != tree.Count() {
		return fault.ErrInvalidCount
	}
	if !tree.IsAVLTree() || !tree.CheckHeights() || !tree.CheckCounts() {
		return fault.ErrTreeNotBalanced
	}
	return nil
}
