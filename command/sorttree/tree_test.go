// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

func TestBuildTreeVariants(t *testing.T) {
	entries := intEntries(30, 20, 10, 40, 50)

	td, err := buildTree(variantBST, entries, false)
	require.NoError(t, err, "bst")
	assert.NotNil(t, td.tree, "unbalanced tree")
	assert.Nil(t, td.avl, "no avl")
	assert.Equal(t, 3, td.dict.Height(), "unbalanced height")

	td, err = buildTree(variantBST, entries, true)
	require.NoError(t, err, "optimal")
	assert.Equal(t, 3, td.dict.Height(), "optimal height")
	assert.Equal(t, bst.IntKey(30), td.tree.Root().Key(), "median root")

	td, err = buildTree(variantAVL, entries, false)
	require.NoError(t, err, "avl")
	assert.NotNil(t, td.avl, "avl")
	assert.Nil(t, td.tree, "no unbalanced tree")
	assert.Equal(t, bst.Stats{LL: 1, RR: 1}, td.avl.Stats(), "rotations")

	_, err = buildTree(variantAVL, entries, true)
	assert.Equal(t, fault.ErrInvalidVariant, err, "optimal avl")

	_, err = buildTree("heap", entries, false)
	assert.Equal(t, fault.ErrInvalidVariant, err, "unknown variant")
}

// a tree whose consistency check always fails
type corruptTree struct {
	*bst.Tree
}

func (corruptTree) Check() error {
	return fault.ErrBalanceMismatch
}

func TestVerifyTree(t *testing.T) {
	tree := bst.Build(intEntries(2, 1, 3))
	assert.NotPanics(t, func() { verifyTree(variantBST, tree) }, "valid tree")

	assert.PanicsWithValue(t, "bst tree check failed with error: stored balance factor differs from subtree heights", func() {
		verifyTree(variantBST, corruptTree{tree})
	}, "corrupt tree")
}

func TestMakeTree(t *testing.T) {
	dir, remove := tempDir(t)
	defer remove()

	fileName := writeFile(t, dir, "data.txt", "pear 3\napple 1\nfig 2\n")
	config := &Configuration{
		Variant: variantAVL,
		Source: dataset.Source{
			Kind: dataset.KindFile,
			File: fileName,
		},
	}

	td, err := makeTree(config, false)
	require.NoError(t, err, "make tree")
	assert.Equal(t, 3, td.dict.Count(), "count")

	config.Source.File = filepath.Join(dir, "missing.txt")
	_, err = makeTree(config, false)
	assert.Error(t, err, "missing file")
}

func TestParseKey(t *testing.T) {
	td := &treeData{entries: intEntries(1)}
	key, err := td.parseKey("42")
	require.NoError(t, err, "int key")
	assert.Equal(t, bst.IntKey(42), key, "int key value")

	_, err = td.parseKey("forty two")
	assert.Error(t, err, "not an int")

	td = &treeData{entries: []bst.Entry{{Key: bst.BytesKey("a")}}}
	key, err = td.parseKey("abc")
	require.NoError(t, err, "bytes key")
	assert.Equal(t, bst.BytesKey("abc"), key, "bytes key value")

	td = &treeData{}
	key, err = td.parseKey("abc")
	require.NoError(t, err, "empty tree")
	assert.Equal(t, bst.StringKey("abc"), key, "string key value")
}

func TestSearchKeys(t *testing.T) {
	td, err := buildTree(variantAVL, intEntries(5, 3, 8), false)
	require.NoError(t, err, "build")

	results, err := searchKeys(td, []string{"3", "4"})
	require.NoError(t, err, "search")

	expected := []searchResult{
		{Key: "3", Found: true, Value: 30},
		{Key: "4", Found: false},
	}
	assert.Equal(t, expected, results, "results")

	_, err = searchKeys(td, []string{"x"})
	assert.Error(t, err, "bad key")
}

func TestDeleteKeys(t *testing.T) {
	entries := []bst.Entry{
		{Key: bst.IntKey(5), Value: "a"},
		{Key: bst.IntKey(3), Value: "b"},
		{Key: bst.IntKey(8), Value: "c"},
		{Key: bst.IntKey(1), Value: "d"},
	}
	td, err := buildTree(variantBST, entries, false)
	require.NoError(t, err, "build")

	results, err := deleteKeys(td, []string{"3", "7"})
	require.NoError(t, err, "delete")

	expected := []deleteResult{
		{Key: "3", Deleted: true, Value: "b"},
		{Key: "7", Deleted: false},
	}
	assert.Equal(t, expected, results, "results")
	assert.Equal(t, 3, td.dict.Count(), "count")

	avl, err := buildTree(variantAVL, entries, false)
	require.NoError(t, err, "build avl")
	_, err = deleteKeys(avl, []string{"3"})
	assert.Equal(t, fault.ErrInvalidVariant, err, "avl has no delete")
}

func TestCheckTree(t *testing.T) {
	ordered := dataset.Source{Kind: dataset.KindLevelDB}

	entries := []bst.Entry{
		{Key: bst.BytesKey("a"), Value: "1"},
		{Key: bst.BytesKey("b"), Value: "2"},
	}
	td, err := buildTree(variantAVL, entries, false)
	require.NoError(t, err, "build")

	result := checkTree(td, ordered)
	assert.True(t, result.OK, "ordered source")
	assert.Equal(t, 2, result.Count, "count")

	// source order that disagrees with the tree
	td.entries = []bst.Entry{entries[1], entries[0]}
	result = checkTree(td, ordered)
	assert.False(t, result.OK, "order differs")
	assert.Equal(t, fault.ErrOrderViolation.Error(), result.Error, "order error")

	// unordered sources only check invariants
	result = checkTree(td, dataset.DefaultSource())
	assert.True(t, result.OK, "random source")

	td.entries = entries[:1]
	result = checkTree(td, ordered)
	assert.Equal(t, fault.ErrCountMismatch.Error(), result.Error, "count differs")
}

func TestTreeStats(t *testing.T) {
	td, err := buildTree(variantAVL, intEntries(30, 20, 10, 10), false)
	require.NoError(t, err, "build")

	s := treeStats(td)
	assert.Equal(t, variantAVL, s.Variant, "variant")
	assert.Equal(t, 4, s.Entries, "entries")
	assert.Equal(t, 3, s.Count, "count")
	assert.Equal(t, 2, s.Height, "height")
	assert.Equal(t, 2, s.OptimalHeight, "optimal height")
	assert.Equal(t, bst.HeightBound(3), s.HeightBound, "bound")
	require.NotNil(t, s.Rotations, "rotations")
	assert.Equal(t, uint64(1), s.Rotations.LL, "LL")

	td, err = buildTree(variantBST, intEntries(1, 2, 3), false)
	require.NoError(t, err, "build bst")
	s = treeStats(td)
	assert.Equal(t, 3, s.Height, "list height")
	assert.Nil(t, s.Rotations, "no rotations")
	assert.Equal(t, 0, s.HeightBound, "no bound")
}

func TestListEntriesJson(t *testing.T) {
	td, err := buildTree(variantBST, intEntries(2, 1), false)
	require.NoError(t, err, "build")

	var b bytes.Buffer
	err = printJson(&b, listEntries(td.dict))
	require.NoError(t, err, "print")

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(b.Bytes(), &decoded), "decode")
	require.Len(t, decoded, 2, "entries")
	assert.Equal(t, "1", decoded[0]["key"], "first key")
	assert.Equal(t, float64(10), decoded[0]["value"], "first value")
	assert.Equal(t, "2", decoded[1]["key"], "second key")
}

func TestPrintTree(t *testing.T) {
	td, err := buildTree(variantBST, nil, false)
	require.NoError(t, err, "build empty")

	var b bytes.Buffer
	printTree(&b, td, false)
	assert.Equal(t, "empty tree\n", b.String(), "empty")

	td, err = buildTree(variantBST, intEntries(1), false)
	require.NoError(t, err, "build")
	b.Reset()
	printTree(&b, td, true)
	assert.Equal(t, "|------+ 1 → 10 +0\n", b.String(), "single node")
}
