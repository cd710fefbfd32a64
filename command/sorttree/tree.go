// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

// a tree built from the configured source
type treeData struct {
	variant string
	entries []bst.Entry
	dict    bst.Dictionary
	tree    *bst.Tree // unbalanced variant only
	avl     *bst.AVL  // balanced variant only
}

// logs each rotation on the "tree" channel
type rotationLogger struct {
	log *logger.L
}

func (r rotationLogger) Rotated(kind bst.Rotation, critical bst.Item) {
	r.log.Debugf("rotation: %s  at key: %v", kind, critical)
}

// load the entries and insert them in source order
func makeTree(config *Configuration, optimal bool) (*treeData, error) {
	entries, err := dataset.Load(config.Source)
	if nil != err {
		return nil, err
	}
	return buildTree(config.Variant, entries, optimal)
}

func buildTree(variant string, entries []bst.Entry, optimal bool) (*treeData, error) {

	log := logger.New("tree")
	defer log.Flush()

	td := &treeData{
		variant: variant,
		entries: entries,
	}

	switch variant {
	case variantBST:
		if optimal {
			td.tree = bst.BuildOptimal(entries)
		} else {
			td.tree = bst.Build(entries)
		}
		td.dict = td.tree

	case variantAVL:
		if optimal {
			return nil, fault.ErrInvalidVariant
		}
		td.avl = bst.NewAVL()
		td.avl.SetObserver(rotationLogger{log: log})
		for _, e := range entries {
			td.avl.Insert(e.Key, e.Value)
		}
		td.dict = td.avl

	default:
		return nil, fault.ErrInvalidVariant
	}

	verifyTree(variant, td.dict)

	log.Infof("%s: %d entries  %d nodes  height: %d", variant, len(entries), td.dict.Count(), td.dict.Height())
	return td, nil
}

// a freshly built tree must pass its own consistency check
func verifyTree(variant string, d bst.Dictionary) {
	fault.PanicIfError(variant+" tree check", d.Check())
}

// convert a command line argument to the key type used by the tree
func (td *treeData) parseKey(s string) (bst.Item, error) {
	if 0 == len(td.entries) {
		return bst.StringKey(s), nil
	}
	switch td.entries[0].Key.(type) {
	case bst.IntKey:
		n, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, err
		}
		return bst.IntKey(n), nil
	case bst.BytesKey:
		return bst.BytesKey(s), nil
	default:
		return bst.StringKey(s), nil
	}
}

// printable form of a key, BytesKey would otherwise be base64 in JSON
func keyString(key bst.Item) string {
	return fmt.Sprintf("%v", key)
}
