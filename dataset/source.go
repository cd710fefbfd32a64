// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"strings"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/fault"
)

// names of the sources
const (
	KindRandom  = "random"
	KindFile    = "file"
	KindLevelDB = "leveldb"
)

// defaults match the small demonstration data set
const (
	DefaultSeed  = 0
	DefaultCount = 20
	DefaultRange = 100
)

// Source - configuration block selecting where entries come from
type Source struct {
	Kind     string `gluamapper:"kind" json:"kind"`
	Seed     int64  `gluamapper:"seed" json:"seed"`
	Count    int    `gluamapper:"count" json:"count"`
	Range    int    `gluamapper:"range" json:"range"`
	File     string `gluamapper:"file" json:"file"`
	Database string `gluamapper:"database" json:"database"`
	Prefix   string `gluamapper:"prefix" json:"prefix"`
}

// DefaultSource - the random demonstration source
func DefaultSource() Source {
	return Source{
		Kind:  KindRandom,
		Seed:  DefaultSeed,
		Count: DefaultCount,
		Range: DefaultRange,
	}
}

// Load - fetch the entries described by the source
//
// for the leveldb kind a non-positive count means the whole range
func Load(source Source) ([]bst.Entry, error) {
	switch strings.ToLower(source.Kind) {
	case KindRandom:
		return Random(source.Seed, source.Count, source.Range)
	case KindFile:
		return ReadFile(source.File)
	case KindLevelDB:
		return LevelDB(source.Database, []byte(source.Prefix), source.Count)
	default:
		return nil, fault.ErrUnknownSource
	}
}

// Ordered - true if entries from this source are already in ascending
// unique key order
func (source Source) Ordered() bool {
	return KindLevelDB == strings.ToLower(source.Kind)
}
