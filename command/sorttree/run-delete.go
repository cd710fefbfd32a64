// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/fault"
)

type deleteResult struct {
	Key     string      `json:"key"`
	Deleted bool        `json:"deleted"`
	Value   interface{} `json:"value,omitempty"`
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("delete: at least one KEY is required")
	}

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	results, err := deleteKeys(td, c.Args())
	if nil != err {
		return err
	}

	for _, r := range results {
		m.log.Infof("delete: %s  deleted: %v", r.Key, r.Deleted)
	}

	printTree(m.w, td, m.config.PrintValues)
	return printJson(m.w, results)
}

// only the unbalanced tree supports deletion
func deleteKeys(td *treeData, keys []string) ([]deleteResult, error) {
	if nil == td.tree {
		return nil, fault.ErrInvalidVariant
	}

	results := make([]deleteResult, 0, len(keys))
	for _, s := range keys {
		key, err := td.parseKey(s)
		if nil != err {
			return nil, fmt.Errorf("key: %q  error: %s", s, err)
		}
		value, deleted := td.tree.Delete(key)
		results = append(results, deleteResult{
			Key:     keyString(key),
			Deleted: deleted,
			Value:   value,
		})
	}
	return results, nil
}
