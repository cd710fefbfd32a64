// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Item - a key item must implement the Compare function
//
// Compare returns negative, zero or positive when the receiver is
// less than, equal to or greater than the argument.  The argument is
// always another key of the same tree so it can be type asserted.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// StringKey - key ordered by strings.Compare
type StringKey string

// Compare - Item interface
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// String - the key as is
func (s StringKey) String() string {
	return string(s)
}

// IntKey - key ordered numerically
type IntKey int64

// Compare - Item interface
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (i IntKey) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// BytesKey - key ordered by bytes.Compare, the same order LevelDB
// uses for its keys
type BytesKey []byte

// Compare - Item interface
func (b BytesKey) Compare(x interface{}) int {
	return bytes.Compare(b, x.(BytesKey))
}

// String - text if valid UTF-8, otherwise hex
func (b BytesKey) String() string {
	if utf8.Valid(b) {
		return string(b)
	}
	return hex.EncodeToString(b)
}
