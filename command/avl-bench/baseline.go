// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// comparison structures run over the same keys as the tree
//
// memdb is the ordered skip list leveldb uses for its memtable, so it
// runs all four phases; the cache is an unordered hash map with no
// range phase
func runBaselines(keys []avl.Item, log *logger.L) ([]result, error) {
	results, err := runMemDB(keys, log)
	if nil != err {
		return nil, err
	}
	cached, err := runCache(keys, log)
	if nil != err {
		return nil, err
	}
	return append(results, cached...), nil
}

// big endian so byte order matches key order for non-negative keys
func memKey(key avl.Item) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(key.(avl.IntKey)))
	return buffer
}

func memValue(i int) []byte {
	return []byte(strconv.Itoa(i))
}

func runMemDB(keys []avl.Item, log *logger.L) ([]result, error) {
	n := uint64(len(keys))
	db := memdb.New(comparer.DefaultComparer, 0)
	results := make([]result, 0, 4)

	start := time.Now()
	for i, key := range keys {
		if err := db.Put(memKey(key), memValue(i)); nil != err {
			return nil, err
		}
	}
	results = append(results, result{Phase: "memdb-insert", Operations: n, Elapsed: time.Since(start)})

	start = time.Now()
	for i, key := range keys {
		v, err := db.Get(memKey(key))
		if nil != err || string(v) != string(memValue(i)) {
			log.Errorf("memdb lookup: %v  error: %v", key, err)
			return nil, fault.ErrKeyNotFound
		}
	}
	results = append(results, result{Phase: "memdb-lookup", Operations: n, Elapsed: time.Since(start)})

	start = time.Now()
	count := uint64(0)
	iter := db.NewIterator(nil)
	for iter.Next() {
		count += 1
	}
	iter.Release()
	results = append(results, result{Phase: "memdb-range", Operations: count, Elapsed: time.Since(start)})
	if count != n {
		log.Errorf("memdb range: %d  expected: %d", count, n)
		return nil, fault.ErrInvalidCount
	}

	start = time.Now()
	for _, key := range keys {
		if err := db.Delete(memKey(key)); nil != err {
			log.Errorf("memdb delete: %v  error: %s", key, err)
			return nil, fault.ErrKeyNotFound
		}
	}
	results = append(results, result{Phase: "memdb-delete", Operations: n, Elapsed: time.Since(start)})

	if 0 != db.Len() {
		log.Errorf("memdb not empty after delete: %d", db.Len())
		return nil, fault.ErrInvalidCount
	}
	return results, nil
}

func runCache(keys []avl.Item, log *logger.L) ([]result, error) {
	n := uint64(len(keys))
	c := cache.New(cache.NoExpiration, 0)
	results := make([]result, 0, 3)

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = strconv.Itoa(int(key.(avl.IntKey)))
	}

	start := time.Now()
	for i, key := range cacheKeys {
		c.Set(key, i, cache.NoExpiration)
	}
	results = append(results, result{Phase: "cache-insert", Operations: n, Elapsed: time.Since(start)})

	start = time.Now()
	for i, key := range cacheKeys {
		v, found := c.Get(key)
		if !found || v != i {
			log.Errorf("cache lookup: %s  returned: %v, %v", key, v, found)
			return nil, fault.ErrKeyNotFound
		}
	}
	results = append(results, result{Phase: "cache-lookup", Operations: n, Elapsed: time.Since(start)})

	start = time.Now()
	for _, key := range cacheKeys {
		c.Delete(key)
	}
	results = append(results, result{Phase: "cache-delete", Operations: n, Elapsed: time.Since(start)})

	if 0 != c.ItemCount() {
		log.Errorf("cache not empty after delete: %d", c.ItemCount())
		return nil, fault.ErrInvalidCount
	}
	return results, nil
}
