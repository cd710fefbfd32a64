// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sorttree/bst"
)

func TestItemCompare(t *testing.T) {
	items := []struct {
		a        bst.Item
		b        bst.Item
		expected int
	}{
		{bst.StringKey("apple"), bst.StringKey("banana"), -1},
		{bst.StringKey("banana"), bst.StringKey("apple"), 1},
		{bst.StringKey("pear"), bst.StringKey("pear"), 0},
		{bst.IntKey(-5), bst.IntKey(3), -1},
		{bst.IntKey(10), bst.IntKey(9), 1},
		{bst.IntKey(7), bst.IntKey(7), 0},
		{bst.BytesKey{0x01, 0x02}, bst.BytesKey{0x01, 0x03}, -1},
		{bst.BytesKey{0x01, 0x02, 0x00}, bst.BytesKey{0x01, 0x02}, 1},
		{bst.BytesKey("key"), bst.BytesKey("key"), 0},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, item.a.Compare(item.b), "%d: %v <=> %v", i, item.a, item.b)
	}
}

func TestItemString(t *testing.T) {
	assert.Equal(t, "text", bst.StringKey("text").String(), "string key")
	assert.Equal(t, "-42", bst.IntKey(-42).String(), "int key")
	assert.Equal(t, "abc", bst.BytesKey("abc").String(), "printable bytes key")
	assert.Equal(t, "ff00fe", bst.BytesKey{0xff, 0x00, 0xfe}.String(), "binary bytes key")
}
