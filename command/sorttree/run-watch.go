// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if dataset.KindFile != strings.ToLower(m.config.Source.Kind) {
		return fault.ErrUnknownSource
	}

	w, err := newFileWatcher(m.config.Source.File, c.Duration("interval"), m.log)
	if nil != err {
		return err
	}
	defer w.Close()

	rebuild := func() error {
		td, err := makeTree(m.config, false)
		if nil != err {
			return err
		}
		return printJson(m.w, treeStats(td))
	}

	// initial state
	if err := rebuild(); nil != err {
		return err
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	defer close(done)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go waitForSignal(signals, stop, done, m.log)

	m.log.Infof("watching: %q", m.config.Source.File)
	return w.run(c.Int("count"), rebuild, stop)
}

// close stop on the first signal, or give up once the watch has ended
func waitForSignal(signals <-chan os.Signal, stop chan<- struct{}, done <-chan struct{}, log *logger.L) {
	select {
	case sig := <-signals:
		log.Infof("received signal: %v", sig)
		close(stop)
	case <-done:
	}
}
