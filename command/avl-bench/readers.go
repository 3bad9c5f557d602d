// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"golang.org/x/time/rate"
)

// a background process performing point lookups under the read lock
// while the main routine deletes
type lookupReader struct {
	offset  int
	limiter *rate.Limiter // nil => unlimited
}

func newLookupReader(offset int, lookupsPerSecond float64) *lookupReader {
	r := &lookupReader{
		offset: offset,
	}
	if lookupsPerSecond > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(lookupsPerSecond), 1)
	}
	return r
}

// Run - background process loop, args must be the *sharedTree
func (r *lookupReader) Run(args interface{}, shutdown <-chan struct{}) {

	s := args.(*sharedTree)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	i := r.offset
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		if nil != r.limiter {
			if err := r.limiter.Wait(ctx); nil != err {
				break loop
			}
		}

		s.RLock()
		s.tree.Get(s.keys[i%len(s.keys)])
		s.RUnlock()
		s.lookups.Increment()
		i += 1
	}
}
