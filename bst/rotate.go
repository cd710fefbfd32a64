// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Rotation - the shape of the imbalance that was corrected
type Rotation int

// the four rebalancing operations
const (
	RotateLL Rotation = iota // single right rotation
	RotateLR Rotation = iota // double rotation, left then right
	RotateRR Rotation = iota // single left rotation
	RotateRL Rotation = iota // double rotation, right then left
)

// String - the conventional name
func (r Rotation) String() string {
	switch r {
	case RotateLL:
		return "LL"
	case RotateLR:
		return "LR"
	case RotateRR:
		return "RR"
	case RotateRL:
		return "RL"
	default:
		return "??"
	}
}

// In each rotation a is the unbalanced node and b its child on the
// taller side.  The new subtree root is returned for the caller to
// link in place of a.

// a's left subtree is too high, new node is in b's left subtree
func rotateLL(a *Node, b *Node) *Node {
	a.left = b.right
	b.right = a
	a.balance = 0
	b.balance = 0
	return b
}

// a's right subtree is too high, new node is in b's right subtree
func rotateRR(a *Node, b *Node) *Node {
	a.right = b.left
	b.left = a
	a.balance = 0
	b.balance = 0
	return b
}

// a's left subtree is too high, new node is in b's right subtree
// c = b.right becomes the subtree root
func rotateLR(a *Node, b *Node) *Node {
	c := b.right
	a.left = c.right
	b.right = c.left
	c.left = b
	c.right = a
	switch c.balance {
	case 0: // c is the new node
		a.balance = 0
		b.balance = 0
	case +1: // new node is in c's left subtree
		a.balance = -1
		b.balance = 0
	default: // new node is in c's right subtree
		a.balance = 0
		b.balance = +1
	}
	c.balance = 0
	return c
}

// a's right subtree is too high, new node is in b's left subtree
// c = b.left becomes the subtree root
func rotateRL(a *Node, b *Node) *Node {
	c := b.left
	a.right = c.left
	b.left = c.right
	c.left = a
	c.right = b
	switch c.balance {
	case 0: // c is the new node
		a.balance = 0
		b.balance = 0
	case +1: // new node is in c's left subtree
		a.balance = 0
		b.balance = -1
	default: // new node is in c's right subtree
		a.balance = +1
		b.balance = 0
	}
	c.balance = 0
	return c
}
