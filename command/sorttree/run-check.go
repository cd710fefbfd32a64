// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

type checkResult struct {
	Variant string `json:"variant"`
	Count   int    `json:"count"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	result := checkTree(td, m.config.Source)
	if !result.OK {
		m.log.Warnf("check failed: %s", result.Error)
	}
	return printJson(m.w, result)
}

// verify invariants and, for an ordered source, that an in-order walk
// returns exactly the source entries
func checkTree(td *treeData, source dataset.Source) checkResult {
	result := checkResult{
		Variant: td.variant,
		Count:   td.dict.Count(),
		OK:      true,
	}

	err := td.dict.Check()
	if nil == err && source.Ordered() {
		err = sameOrder(td)
	}
	if nil != err {
		result.OK = false
		result.Error = err.Error()
	}
	return result
}

func sameOrder(td *treeData) error {
	entries := td.dict.Entries()
	if len(entries) != len(td.entries) {
		return fault.ErrCountMismatch
	}
	for i, e := range entries {
		if 0 != e.Key.Compare(td.entries[i].Key) {
			return fault.ErrOrderViolation
		}
	}
	return nil
}
