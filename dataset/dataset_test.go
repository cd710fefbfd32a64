// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "dataset")
	require.NoError(t, err, "temp dir")
	return dir, func() { os.RemoveAll(dir) }
}

func TestRandomRepeatable(t *testing.T) {
	first, err := dataset.Random(0, 20, 100)
	require.NoError(t, err, "first")
	second, err := dataset.Random(0, 20, 100)
	require.NoError(t, err, "second")

	assert.Equal(t, first, second, "same seed, same entries")
	assert.Len(t, first, 20, "count")

	for i, e := range first {
		k := int(e.Key.(bst.IntKey))
		assert.True(t, k >= 0 && k <= 100, "%d: key: %d out of range", i, k)
		v := e.Value.(int)
		assert.True(t, v >= 0 && v <= 100, "%d: value: %d out of range", i, v)
	}

	other, err := dataset.Random(1, 20, 100)
	require.NoError(t, err, "other seed")
	assert.NotEqual(t, first, other, "different seed")
}

func TestRandomErrors(t *testing.T) {
	_, err := dataset.Random(0, -1, 100)
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")

	_, err = dataset.Random(0, 5, -1)
	assert.Equal(t, fault.ErrInvalidRange, err, "negative range")

	entries, err := dataset.Random(0, 0, 0)
	assert.NoError(t, err, "empty")
	assert.Empty(t, entries, "no entries")
}

func TestSequence(t *testing.T) {
	entries, err := dataset.Sequence(4)
	require.NoError(t, err, "sequence")
	for i, e := range entries {
		assert.Equal(t, bst.IntKey(i), e.Key, "key: %d", i)
	}

	_, err = dataset.Sequence(-1)
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")
}

func TestReadNumeric(t *testing.T) {
	text := "# comment\n" +
		"5 five\n" +
		"\n" +
		"  3\tthree and more  \n" +
		"-8 minus eight\n"

	entries, err := dataset.Read(strings.NewReader(text))
	require.NoError(t, err, "read")

	expected := []bst.Entry{
		{Key: bst.IntKey(5), Value: "five"},
		{Key: bst.IntKey(3), Value: "three and more"},
		{Key: bst.IntKey(-8), Value: "minus eight"},
	}
	assert.Equal(t, expected, entries, "entries")
}

func TestReadMixedKeys(t *testing.T) {
	entries, err := dataset.Read(strings.NewReader("10 a\npear b\n"))
	require.NoError(t, err, "read")

	expected := []bst.Entry{
		{Key: bst.StringKey("10"), Value: "a"},
		{Key: bst.StringKey("pear"), Value: "b"},
	}
	assert.Equal(t, expected, entries, "all string keys")
}

func TestReadInvalidLine(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1 one\nlonely\n"))
	assert.Equal(t, fault.ErrInvalidLine, err, "key without value")
}

func TestLoad(t *testing.T) {
	dir, remove := tempDir(t)
	defer remove()

	fileName := filepath.Join(dir, "data.txt")
	err := ioutil.WriteFile(fileName, []byte("2 b\n1 a\n"), 0600)
	require.NoError(t, err, "write")

	entries, err := dataset.Load(dataset.Source{Kind: "FILE", File: fileName})
	require.NoError(t, err, "load file")
	assert.Len(t, entries, 2, "file entries")

	entries, err = dataset.Load(dataset.DefaultSource())
	require.NoError(t, err, "load random")
	assert.Len(t, entries, dataset.DefaultCount, "random entries")

	_, err = dataset.Load(dataset.Source{Kind: "floppy"})
	assert.Equal(t, fault.ErrUnknownSource, err, "unknown kind")

	_, err = dataset.Load(dataset.Source{Kind: dataset.KindFile, File: fileName + ".missing"})
	assert.True(t, os.IsNotExist(err), "missing file")

	assert.True(t, dataset.Source{Kind: dataset.KindLevelDB}.Ordered(), "leveldb ordered")
	assert.False(t, dataset.DefaultSource().Ordered(), "random not ordered")
}

func TestLevelDB(t *testing.T) {
	dir, remove := tempDir(t)
	defer remove()

	name := filepath.Join(dir, "test.leveldb")

	err := dataset.SaveLevelDB(name, []byte("t:"), []bst.Entry{
		{Key: bst.StringKey("pear"), Value: 3},
		{Key: bst.StringKey("apple"), Value: 1},
		{Key: bst.StringKey("fig"), Value: 2},
	})
	require.NoError(t, err, "save")

	// unrelated keys either side of the prefix
	db, err := leveldb.OpenFile(name, nil)
	require.NoError(t, err, "open")
	require.NoError(t, db.Put([]byte("a:zzz"), []byte("x"), nil), "put before")
	require.NoError(t, db.Put([]byte("u:aaa"), []byte("y"), nil), "put after")
	db.Close()

	entries, err := dataset.LevelDB(name, []byte("t:"), 0)
	require.NoError(t, err, "load")

	expected := []bst.Entry{
		{Key: bst.BytesKey("apple"), Value: "1"},
		{Key: bst.BytesKey("fig"), Value: "2"},
		{Key: bst.BytesKey("pear"), Value: "3"},
	}
	assert.Equal(t, expected, entries, "ascending entries")

	// the tree agrees with the database order
	tree := bst.Build(entries)
	assert.Equal(t, expected, tree.Entries(), "tree order")

	entries, err = dataset.LevelDB(name, []byte("t:"), 2)
	require.NoError(t, err, "limited")
	assert.Len(t, entries, 2, "limit")

	entries, err = dataset.Load(dataset.Source{Kind: dataset.KindLevelDB, Database: name})
	require.NoError(t, err, "whole database")
	assert.Len(t, entries, 5, "all keys")

	_, err = dataset.LevelDB(filepath.Join(dir, "missing"), nil, 0)
	assert.Equal(t, fault.ErrNotFoundDatabase, err, "missing database")
}
