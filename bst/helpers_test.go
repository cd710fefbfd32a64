// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/sorttree/bst"
)

// parenthesised form: (left key/balance right), "-" for empty
func shape(p *bst.Node) string {
	if nil == p {
		return "-"
	}
	if nil == p.Left() && nil == p.Right() {
		return fmt.Sprintf("%v/%+d", p.Key(), p.Balance())
	}
	return fmt.Sprintf("(%s %v/%+d %s)", shape(p.Left()), p.Key(), p.Balance(), shape(p.Right()))
}

func intEntries(keys ...int) []bst.Entry {
	entries := make([]bst.Entry, len(keys))
	for i, k := range keys {
		entries[i] = bst.Entry{Key: bst.IntKey(k), Value: fmt.Sprintf("v%d", k)}
	}
	return entries
}

// sorted unique copy of the keys
func sortedUnique(keys []bst.StringKey) []string {
	unique := make(map[string]struct{})
	for _, key := range keys {
		unique[key.String()] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

func iteratedKeys(d bst.Dictionary) []string {
	keys := make([]string, 0, d.Count())
	it := d.Iterator()
	for it.Next() {
		keys = append(keys, fmt.Sprintf("%v", it.Key()))
	}
	return keys
}
