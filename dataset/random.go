// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/fault"
)

// Random - count pairs of integers each in [0, keyRange]
//
// keys may repeat; the generator is private so the same seed always
// gives the same entries
func Random(seed int64, count int, keyRange int) ([]bst.Entry, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}
	if keyRange < 0 {
		return nil, fault.ErrInvalidRange
	}

	r := rand.New(rand.NewSource(seed))

	entries := make([]bst.Entry, count)
	for i := range entries {
		key := r.Intn(keyRange + 1)
		value := r.Intn(keyRange + 1)
		entries[i] = bst.Entry{
			Key:   bst.IntKey(key),
			Value: value,
		}
	}
	return entries, nil
}

// Sequence - count ascending keys starting at zero, the worst case
// input for an unbalanced tree
func Sequence(count int) ([]bst.Entry, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}
	entries := make([]bst.Entry, count)
	for i := range entries {
		entries[i] = bst.Entry{
			Key:   bst.IntKey(i),
			Value: i,
		}
	}
	return entries, nil
}
