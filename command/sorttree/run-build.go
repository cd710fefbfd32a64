// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"
)

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	td, err := makeTree(m.config, c.Bool("optimal"))
	if nil != err {
		return err
	}

	printValues := m.config.PrintValues || c.Bool("values")
	printTree(m.w, td, printValues)

	if m.verbose {
		fmt.Fprintf(m.e, "nodes: %d  height: %d\n", td.dict.Count(), td.dict.Height())
	}
	return nil
}

func printTree(w io.Writer, td *treeData, printValues bool) {
	if td.dict.IsEmpty() {
		fmt.Fprintf(w, "empty tree\n")
		return
	}
	td.dict.Print(w, printValues)
}
