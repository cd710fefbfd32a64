// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/bst"
)

type listEntry struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	return printJson(m.w, listEntries(td.dict))
}

func listEntries(d bst.Dictionary) []listEntry {
	result := make([]listEntry, 0, d.Count())
	for _, e := range d.Entries() {
		result = append(result, listEntry{
			Key:   keyString(e.Key),
			Value: e.Value,
		})
	}
	return result
}
