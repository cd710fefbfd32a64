// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"
)

// Build - unbalanced tree from entries inserted in the order given
func Build(entries []Entry) *Tree {
	tree := New()
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	return tree
}

// BuildAVL - balanced tree from entries inserted in the order given
func BuildAVL(entries []Entry) *AVL {
	tree := NewAVL()
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	return tree
}

// BuildOptimal - unbalanced tree of minimum height from the entries
//
// the entries are sorted and each subtree root is the median of its
// range.  When a key occurs more than once the last value wins, as it
// would for successive inserts.  The input slice is not modified.
func BuildOptimal(entries []Entry) *Tree {
	data := make([]Entry, len(entries))
	copy(data, entries)
	sort.SliceStable(data, func(i int, j int) bool {
		return data[i].Key.Compare(data[j].Key) < 0
	})

	unique := data[:0]
	for _, e := range data {
		n := len(unique)
		if n > 0 && 0 == unique[n-1].Key.Compare(e.Key) {
			unique[n-1].Value = e.Value
			continue
		}
		unique = append(unique, e)
	}

	tree := New()
	tree.root = buildOptimal(unique, 0, len(unique)-1)
	tree.count = len(unique)
	return tree
}

func buildOptimal(data []Entry, start int, end int) *Node {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	p := newNode(data[mid].Key, data[mid].Value)
	p.left = buildOptimal(data, start, mid-1)
	p.right = buildOptimal(data, mid+1, end)
	return p
}
