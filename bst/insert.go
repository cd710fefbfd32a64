// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a key to the unbalanced tree or overwrite its value
//
// returns true if a node was added, false if the value was replaced
func (tree *Tree) Insert(key Item, value interface{}) bool {
	p := tree.root
	if nil == p {
		tree.root = newNode(key, value)
		tree.count += 1
		return true
	}
	for {
		switch r := p.key.Compare(key); {
		case r > 0: // p.key > key
			if nil == p.left {
				p.left = newNode(key, value)
				tree.count += 1
				return true
			}
			p = p.left
		case r < 0: // p.key < key
			if nil == p.right {
				p.right = newNode(key, value)
				tree.count += 1
				return true
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}
}
