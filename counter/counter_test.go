// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if 10 != c1.Add(7) {
		t.Errorf("counter is not 10 after adding: %d", c1.Uint64())
	}

	if previous := c1.Reset(); 10 != previous {
		t.Errorf("reset returned: %d  expected: 10", previous)
	}
	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

func TestConcurrentIncrement(t *testing.T) {

	var c counter.Counter
	const workers = 8
	const each = 1000

	wg := new(sync.WaitGroup)
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	if workers*each != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*each)
	}
}

func TestRate(t *testing.T) {

	var c counter.Counter
	c.Add(500)

	if r := c.Rate(2 * time.Second); 250 != r {
		t.Errorf("rate: %f  expected: 250", r)
	}
	if r := c.Rate(0); 0 != r {
		t.Errorf("rate for zero time: %f  expected: 0", r)
	}
}
