// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dataset - produce key/value entries for building trees
//
// three sources are available:
//
//   random   seeded pseudo-random integer pairs
//   file     text lines of "key value"
//   leveldb  a key prefix range of a LevelDB database
//
// entries are returned in source order so that inserting them
// reproduces the same tree every time.
package dataset
