// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/fault"
)

type result struct {
	name      string
	count     int
	height    int
	build     time.Duration
	search    time.Duration
	rotations *bst.Stats
}

type builder struct {
	name  string
	build func([]bst.Entry) bst.Dictionary
}

var builders = []builder{
	{
		name:  "bst",
		build: func(entries []bst.Entry) bst.Dictionary { return bst.Build(entries) },
	},
	{
		name:  "optimal",
		build: func(entries []bst.Entry) bst.Dictionary { return bst.BuildOptimal(entries) },
	},
	{
		name:  "avl",
		build: func(entries []bst.Entry) bst.Dictionary { return bst.BuildAVL(entries) },
	},
}

// build each kind of tree from the same entries, then look up every key
func bench(entries []bst.Entry, builders []builder, log *logger.L) ([]result, error) {
	results := make([]result, 0, len(builders))

	for _, b := range builders {
		start := time.Now()
		d := b.build(entries)
		buildTime := time.Since(start)

		start = time.Now()
		for _, e := range entries {
			if _, ok := d.Search(e.Key); !ok {
				fault.Criticalf("%s: key: %v not found", b.name, e.Key)
				return nil, fault.ErrCountMismatch
			}
		}
		searchTime := time.Since(start)

		if err := d.Check(); nil != err {
			fault.Criticalf("%s: check error: %s", b.name, err)
			return nil, err
		}

		r := result{
			name:   b.name,
			count:  d.Count(),
			height: d.Height(),
			build:  buildTime,
			search: searchTime,
		}
		if avl, ok := d.(*bst.AVL); ok {
			stats := avl.Stats()
			r.rotations = &stats
		}
		log.Infof("%s: count: %d  height: %d  build: %s  search: %s", r.name, r.count, r.height, r.build, r.search)
		results = append(results, r)
	}
	return results, nil
}

func printResults(w io.Writer, results []result) {
	fmt.Fprintf(w, "%-8s %8s %7s %14s %14s  %s\n", "tree", "nodes", "height", "build", "search", "rotations")
	for _, r := range results {
		rotations := "-"
		if nil != r.rotations {
			s := r.rotations
			rotations = fmt.Sprintf("LL:%d LR:%d RR:%d RL:%d", s.LL, s.LR, s.RR, s.RL)
		}
		fmt.Fprintf(w, "%-8s %8d %7d %14s %14s  %s\n", r.name, r.count, r.height, r.build, r.search, rotations)
	}
	if len(results) > 0 && results[0].count > 0 {
		fmt.Fprintf(w, "AVL height bound: %d\n", bst.HeightBound(results[0].count))
	}
}
