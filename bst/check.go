// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/sorttree/fault"
)

// Check - verify key order and node count of the unbalanced tree
func (tree *Tree) Check() error {
	return tree.check(false)
}

// Check - verify key order, node count, that every stored balance
// factor equals the difference of the subtree heights and that no
// difference exceeds one
func (tree *AVL) Check() error {
	return tree.check(true)
}

// internal: consistency checker
func (c *core) check(balanced bool) error {
	n := 0
	var previous Item
	it := c.Iterator()
	for it.Next() {
		if nil != previous && previous.Compare(it.Key()) >= 0 {
			return fault.ErrOrderViolation
		}
		previous = it.Key()
		n += 1
	}
	if n != c.count {
		return fault.ErrCountMismatch
	}
	if balanced {
		_, err := checkBalance(c.root)
		return err
	}
	return nil
}

// returns the height of the subtree
func checkBalance(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	difference := lh - rh
	if difference < -1 || difference > 1 {
		return 0, fault.ErrUnbalanced
	}
	if difference != p.balance {
		return 0, fault.ErrBalanceMismatch
	}
	if lh > rh {
		return 1 + lh, nil
	}
	return 1 + rh, nil
}
