// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - ordered dictionaries built on binary sort trees
//
// Two variants share the same read operations:
//
//   Tree - plain unbalanced binary sort tree with search, insert,
//          delete and in-order iteration.  Sorted input degrades it
//          to a linked list.
//
//   AVL  - balanced tree that keeps a balance factor in every node
//          and restores the height invariant with a single LL, LR,
//          RR or RL rotation at the deepest unbalanced ancestor.
//          AVL has no delete.
//
// The balance factor of a node is height(left) - height(right) so
// +1 is left heavy and -1 is right heavy.
//
// Nodes have no parent pointers; insert and delete track the nodes
// they need while descending from the root.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
package bst
