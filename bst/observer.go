// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Observer - notified of every rotation performed by AVL.Insert
//
// critical is the key of the deepest unbalanced ancestor, the node
// the rotation was applied to
type Observer interface {
	Rotated(kind Rotation, critical Item)
}

// Stats - number of rotations of each kind since the tree was created
type Stats struct {
	LL uint64 `json:"ll"`
	LR uint64 `json:"lr"`
	RR uint64 `json:"rr"`
	RL uint64 `json:"rl"`
}

// Total - all rotations
func (s Stats) Total() uint64 {
	return s.LL + s.LR + s.RR + s.RL
}

func (s *Stats) add(kind Rotation) {
	switch kind {
	case RotateLL:
		s.LL += 1
	case RotateLR:
		s.LR += 1
	case RotateRR:
		s.RR += 1
	case RotateRL:
		s.RL += 1
	}
}
