// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/sorttree/fault"
)

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	limiter  *rate.Limiter
}

// watch the directory containing the file so that editors which
// replace the file by renaming are still seen
func newFileWatcher(targetFile string, interval time.Duration, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

// call rebuild on every change to the file until stop is closed, the
// file is removed or count rebuilds have been done (0 = no limit)
func (w *fileWatcher) run(count int, rebuild func() error, stop <-chan struct{}) error {
	n := 0
	for {
		select {
		case <-stop:
			return nil

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)
			return err

		case event := <-w.watcher.Events:
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed, stop", w.filePath)
				return fault.ErrNotFoundSourceFile
			}
			if !watcherEventFileChange(event) {
				continue
			}

			if err := limit(w.limiter); nil != err {
				return err
			}
			if err := rebuild(); nil != err {
				w.log.Errorf("rebuild error: %s", err)
				return err
			}
			n += 1
			if count > 0 && n >= count {
				return nil
			}
		}
	}
}

// wait until the limiter allows another rebuild
func limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
