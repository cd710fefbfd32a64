// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/dataset"
)

func runSave(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database := c.String("database")
	if "" == database {
		return fmt.Errorf("save: database is required")
	}
	database, err := filepath.Abs(database)
	if nil != err {
		return err
	}

	td, err := makeTree(m.config, false)
	if nil != err {
		return err
	}

	// in-order so duplicates are already collapsed
	entries := td.dict.Entries()
	err = dataset.SaveLevelDB(database, []byte(c.String("prefix")), entries)
	if nil != err {
		return err
	}

	m.log.Infof("saved: %d entries to: %q", len(entries), database)
	if m.verbose {
		fmt.Fprintf(m.e, "saved: %d entries to: %q\n", len(entries), database)
	}
	return nil
}
