// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int         // +1 left heavy, 0, -1 right heavy (AVL only)
}

// allocate a new leaf
func newNode(key Item, value interface{}) *Node {
	return &Node{
		key:     key,
		value:   value,
		balance: 0,
	}
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - height(left) - height(right), only maintained by AVL
func (p *Node) Balance() int {
	return p.balance
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}
