// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/fault"
)

// LevelDB - entries from all keys starting with prefix
//
// the prefix is stripped from the returned keys.  LevelDB iterates in
// bytes.Compare order, the same order as bst.BytesKey, so the result is
// ascending with no duplicates.  A positive limit stops after that
// many entries.
func LevelDB(name string, prefix []byte, limit int) ([]bst.Entry, error) {
	if _, err := os.Stat(name); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundDatabase
		}
		return nil, err
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	defer db.Close()

	iter := db.NewIterator(ldb_util.BytesPrefix(prefix), nil)

	entries := make([]bst.Entry, 0, 64)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(prefix)) // strip the prefix
		copy(dataKey, key[len(prefix):])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		entries = append(entries, bst.Entry{
			Key:   bst.BytesKey(dataKey),
			Value: string(dataValue),
		})
		if limit > 0 && len(entries) >= limit {
			break iterating
		}
	}
	iter.Release()

	return entries, iter.Error()
}

// SaveLevelDB - write entries under prefix in a single batch
//
// the database is created if necessary; keys and values are stored in
// their printed form
func SaveLevelDB(name string, prefix []byte, entries []bst.Entry) error {
	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		return err
	}
	defer db.Close()

	batch := new(leveldb.Batch)
	for _, e := range entries {
		key := fmt.Sprintf("%v", e.Key)
		prefixedKey := make([]byte, len(prefix)+len(key))
		copy(prefixedKey, prefix)
		copy(prefixedKey[len(prefix):], key)

		batch.Put(prefixedKey, []byte(fmt.Sprintf("%v", e.Value)))
	}
	return db.Write(batch, nil)
}
