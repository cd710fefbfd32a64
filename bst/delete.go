// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - remove a key from the unbalanced tree
//
// returns the value that was stored and true, or nil and false if the
// key was not present.
//
// A node without a left child is replaced by its right child.
// Otherwise the node's right subtree is hung from the rightmost node
// of its left subtree (the in-order predecessor) and the left child
// takes the node's place.
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	var parent *Node
	q := tree.root

search:
	for nil != q {
		switch r := q.key.Compare(key); {
		case r > 0:
			parent = q
			q = q.left
		case r < 0:
			parent = q
			q = q.right
		default:
			break search
		}
	}
	if nil == q {
		return nil, false
	}

	replacement := q.right
	if nil != q.left {
		r := q.left
		for nil != r.right {
			r = r.right
		}
		r.right = q.right
		replacement = q.left
	}

	switch {
	case nil == parent:
		tree.root = replacement
	case parent.left == q:
		parent.left = replacement
	default:
		parent.right = replacement
	}
	tree.count -= 1

	value := q.value
	q.left = nil
	q.right = nil
	q.value = nil
	return value, true
}
