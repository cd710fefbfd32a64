// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"io"

	"github.com/bitmark-inc/sorttree/stack"
)

// Dictionary - the operations shared by both tree variants
type Dictionary interface {
	Search(key Item) (interface{}, bool)
	Insert(key Item, value interface{}) bool
	IsEmpty() bool
	Count() int
	Height() int
	Iterator() *Iterator
	Entries() []Entry
	Check() error
	Print(w io.Writer, printData bool) int
}

var (
	_ Dictionary = (*Tree)(nil)
	_ Dictionary = (*AVL)(nil)
)

// Entry - a key and its value
type Entry struct {
	Key   Item
	Value interface{}
}

// data common to both variants: owns the root
type core struct {
	root  *Node
	count int
}

// Tree - unbalanced binary sort tree
type Tree struct {
	core
}

// New - create an initially empty unbalanced tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (c *core) IsEmpty() bool {
	return nil == c.root
}

// Count - number of nodes currently in the tree
func (c *core) Count() int {
	return c.count
}

// Root - return the root node of the tree
func (c *core) Root() *Node {
	return c.root
}

// First - return the node with the lowest key value
func (c *core) First() *Node {
	p := c.root
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (c *core) Last() *Node {
	p := c.root
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Height - number of nodes on the longest root to leaf path
//
// uses an explicit stack so degenerate trees do not recurse deeply
func (c *core) Height() int {
	type level struct {
		node  *Node
		depth int
	}

	if nil == c.root {
		return 0
	}

	height := 0
	s := stack.New(32)
	s.Push(level{node: c.root, depth: 1})
	for !s.IsEmpty() {
		item, _ := s.Pop()
		l := item.(level)
		if l.depth > height {
			height = l.depth
		}
		if nil != l.node.left {
			s.Push(level{node: l.node.left, depth: l.depth + 1})
		}
		if nil != l.node.right {
			s.Push(level{node: l.node.right, depth: l.depth + 1})
		}
	}
	return height
}
