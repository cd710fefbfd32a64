// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/sorttree/stack"
)

// Iterator - in-order traversal of a tree in ascending key order
//
// the tree must not be modified while an iterator is in use
type Iterator struct {
	pending *Node        // next subtree to descend into
	path    *stack.Stack // nodes whose left subtree is being visited
	current *Node
}

// Iterator - returns a new iterator positioned before the first node
func (c *core) Iterator() *Iterator {
	return &Iterator{
		pending: c.root,
		path:    stack.New(32),
	}
}

// Next - advance to the next node in key order
//
// returns false when the traversal is complete
func (it *Iterator) Next() bool {
	for nil != it.pending {
		it.path.Push(it.pending)
		it.pending = it.pending.left
	}

	item, err := it.path.Pop()
	if nil != err {
		it.current = nil
		return false
	}

	it.current = item.(*Node)
	it.pending = it.current.right
	return true
}

// Valid - true if the iterator is positioned at a node
func (it *Iterator) Valid() bool {
	return nil != it.current
}

// Key - key at the current position, nil when not valid
func (it *Iterator) Key() Item {
	if nil == it.current {
		return nil
	}
	return it.current.key
}

// Value - value at the current position, nil when not valid
func (it *Iterator) Value() interface{} {
	if nil == it.current {
		return nil
	}
	return it.current.value
}

// Entries - all key/value pairs in ascending key order
func (c *core) Entries() []Entry {
	entries := make([]Entry, 0, c.count)
	it := c.Iterator()
	for it.Next() {
		entries = append(entries, Entry{Key: it.Key(), Value: it.Value()})
	}
	return entries
}
