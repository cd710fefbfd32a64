// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"
)

// AVL - height balanced binary sort tree
type AVL struct {
	core
	stats    Stats
	observer Observer
}

// NewAVL - create an initially empty balanced tree
func NewAVL() *AVL {
	return &AVL{}
}

// SetObserver - receive rotation notifications, nil to stop
func (tree *AVL) SetObserver(observer Observer) {
	tree.observer = observer
}

// Stats - rotation counts
func (tree *AVL) Stats() Stats {
	return tree.stats
}

// HeightBound - the maximum height of an AVL tree of n nodes
func HeightBound(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

// Insert - add a key to the balanced tree or overwrite its value
//
// returns true if a node was added, false if the value was replaced.
// At most one rotation is performed.
func (tree *AVL) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count += 1
		return true
	}

	// a: deepest node on the path with a non-zero balance, the root
	//    if there is none; only a can become unbalanced
	// pa: parent of a
	// q: parent of p, ends as the parent of the new node
	a := tree.root
	var pa *Node
	var q *Node

	p := tree.root
	for nil != p {
		r := p.key.Compare(key)
		if 0 == r {
			p.value = value
			return false
		}
		if 0 != p.balance {
			pa = q
			a = p
		}
		q = p
		if r > 0 {
			p = p.left
		} else {
			p = p.right
		}
	}

	node := newNode(key, value)
	if q.key.Compare(key) > 0 {
		q.left = node
	} else {
		q.right = node
	}
	tree.count += 1

	// d: side of a that grew, +1 left or -1 right
	// b: child of a on that side
	var b *Node
	d := 0
	if a.key.Compare(key) > 0 {
		b = a.left
		d = +1
	} else {
		b = a.right
		d = -1
	}

	// every node strictly between a and the new node was balanced
	for p = b; p != node; {
		if p.key.Compare(key) > 0 {
			p.balance = +1
			p = p.left
		} else {
			p.balance = -1
			p = p.right
		}
	}

	switch a.balance {
	case 0: // height of a's subtree grew by one, still within tolerance
		a.balance = d
		return true
	case -d: // the shorter side caught up
		a.balance = 0
		return true
	}

	// the taller side grew: rotate
	var kind Rotation
	var subtree *Node
	if +1 == d {
		if +1 == b.balance {
			kind = RotateLL
			subtree = rotateLL(a, b)
		} else {
			kind = RotateLR
			subtree = rotateLR(a, b)
		}
	} else {
		if -1 == b.balance {
			kind = RotateRR
			subtree = rotateRR(a, b)
		} else {
			kind = RotateRL
			subtree = rotateRL(a, b)
		}
	}

	switch {
	case nil == pa:
		tree.root = subtree
	case pa.left == a:
		pa.left = subtree
	default:
		pa.right = subtree
	}

	tree.stats.add(kind)
	if nil != tree.observer {
		tree.observer.Rotated(kind, a.key)
	}
	return true
}
