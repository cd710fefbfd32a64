// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type searchResult struct {
	Key   string      `json:"key"`
	Found bool        `json:"found"`
	Value interface{} `json:"value,omitempty"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("search: at least one KEY is required")
	}

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	results, err := searchKeys(td, c.Args())
	if nil != err {
		return err
	}
	return printJson(m.w, results)
}

func searchKeys(td *treeData, keys []string) ([]searchResult, error) {
	results := make([]searchResult, 0, len(keys))
	for _, s := range keys {
		key, err := td.parseKey(s)
		if nil != err {
			return nil, fmt.Errorf("key: %q  error: %s", s, err)
		}
		value, found := td.dict.Search(key)
		results = append(results, searchResult{
			Key:   keyString(key),
			Found: found,
			Value: value,
		})
	}
	return results, nil
}
