// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/fault"
)

// ReadFile - entries from a text file, see Read
func ReadFile(fileName string) ([]bst.Entry, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read - entries from lines of "key value"
//
// the key is the first field and the value is the rest of the line
// with surrounding space removed.  Blank lines and lines starting
// with '#' are skipped.  If every key is a decimal integer the keys
// are IntKey, otherwise they are all StringKey so that one tree never
// mixes key types.
func Read(r io.Reader) ([]bst.Entry, error) {

	type line struct {
		key   string
		value string
	}

	lines := make([]line, 0, 64)
	numeric := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s || '#' == s[0] {
			continue
		}

		n := strings.IndexFunc(s, unicode.IsSpace)
		if n < 0 {
			return nil, fault.ErrInvalidLine
		}

		l := line{
			key:   s[:n],
			value: strings.TrimSpace(s[n:]),
		}
		if _, err := strconv.ParseInt(l.key, 10, 64); nil != err {
			numeric = false
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	entries := make([]bst.Entry, len(lines))
	for i, l := range lines {
		entries[i].Value = l.value
		if numeric {
			n, _ := strconv.ParseInt(l.key, 10, 64)
			entries[i].Key = bst.IntKey(n)
		} else {
			entries[i].Key = bst.StringKey(l.key)
		}
	}
	return entries, nil
}
