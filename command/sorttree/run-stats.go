// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/bits"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/bst"
)

type statsResult struct {
	Variant       string     `json:"variant"`
	Entries       int        `json:"entries"`
	Count         int        `json:"count"`
	Height        int        `json:"height"`
	OptimalHeight int        `json:"optimal_height"`
	HeightBound   int        `json:"height_bound,omitempty"`
	Rotations     *bst.Stats `json:"rotations,omitempty"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	return printJson(m.w, treeStats(td))
}

func treeStats(td *treeData) statsResult {
	n := td.dict.Count()
	result := statsResult{
		Variant:       td.variant,
		Entries:       len(td.entries),
		Count:         n,
		Height:        td.dict.Height(),
		OptimalHeight: bits.Len(uint(n)),
	}
	if nil != td.avl {
		stats := td.avl.Stats()
		result.Rotations = &stats
		result.HeightBound = bst.HeightBound(n)
	}
	return result
}
