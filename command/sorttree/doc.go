// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// sorttree - build binary sort trees from a data source and inspect them
//
// Usage:
//
//   sorttree [global options] command [command options] [arguments...]
//
// the data source, tree variant and logging are taken from an optional
// Lua configuration file:
//
//   local M = {}
//   M.data_directory = "."
//   M.variant = "avl"
//   M.print_values = true
//   M.source = {
//       kind = "file",
//       file = "words.txt",
//   }
//   M.logging = {
//       directory = "log",
//       file = "sorttree.log",
//       size = 1048576,
//       count = 10,
//       levels = {
//           DEFAULT = "info",
//           tree = "debug",
//       },
//   }
//   return M
//
// without a configuration file a seeded random data set is used.
package main
