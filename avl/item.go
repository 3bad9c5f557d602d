// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 when the receiver is less than, equal to
// or greater than the argument; the argument is always of the same
// concrete type as the receiver
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntKey - integer key
type IntKey int

// Compare - integer comparison for AVL interface
func (k IntKey) Compare(x interface{}) int {
	y := x.(IntKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

// StringKey - string key compared byte-wise
type StringKey string

// Compare - string comparison for AVL interface
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}
