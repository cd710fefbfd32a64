// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a last-in first-out stack over a growable slice
//
// Note: a stack is not thread safe
package stack

import (
	"github.com/bitmark-inc/sorttree/fault"
)

// Stack - the items, top of stack is the last element
type Stack struct {
	items []interface{}
}

// New - create an empty stack with room for size items before growing
func New(size int) *Stack {
	if size < 0 {
		size = 0
	}
	return &Stack{
		items: make([]interface{}, 0, size),
	}
}

// IsEmpty - true if nothing has been pushed or everything was popped
func (s *Stack) IsEmpty() bool {
	return 0 == len(s.items)
}

// Depth - number of items on the stack
func (s *Stack) Depth() int {
	return len(s.items)
}

// Push - add an item to the top
func (s *Stack) Push(item interface{}) {
	s.items = append(s.items, item)
}

// Pop - remove and return the top item
func (s *Stack) Pop() (interface{}, error) {
	n := len(s.items)
	if 0 == n {
		return nil, fault.ErrStackUnderflow
	}
	n -= 1
	item := s.items[n]
	s.items[n] = nil // do not hold on to popped item
	s.items = s.items[:n]
	return item, nil
}

// Peek - return the top item without removing it
func (s *Stack) Peek() (interface{}, error) {
	n := len(s.items)
	if 0 == n {
		return nil, fault.ErrStackUnderflow
	}
	return s.items[n-1], nil
}
