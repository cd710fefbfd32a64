// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Search - find the value stored for a key
//
// the boolean is false if the key is not in the tree
func (c *core) Search(key Item) (interface{}, bool) {
	p := c.find(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

func (c *core) find(key Item) *Node {
	p := c.root
	for nil != p {
		switch r := p.key.Compare(key); {
		case r > 0: // p.key > key
			p = p.left
		case r < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
