// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sorttree/bst"
	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// defaults for the options
const (
	defaultCount   = 10000
	defaultRange   = 1000000
	defaultLogFile = "treebench.log"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "range", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "sorted", HasArg: getoptions.NO_ARGUMENT, Short: 'S'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		if len(arguments) > 0 {
			fmt.Printf("error: unexpected arguments: %q\n", arguments)
		}
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0

	count, err := intOption(options, "count", defaultCount)
	if nil != err || count < 0 {
		exitwithstatus.Message("%s: count error: %v", program, fault.ErrInvalidCount)
	}
	keyRange, err := intOption(options, "range", defaultRange)
	if nil != err || keyRange < 0 {
		exitwithstatus.Message("%s: range error: %v", program, fault.ErrInvalidRange)
	}
	seed, err := intOption(options, "seed", 0)
	if nil != err {
		exitwithstatus.Message("%s: seed error: %s", program, err)
	}

	logDirectory := filepath.Join(os.TempDir(), "treebench")
	if n := len(options["log-directory"]); n > 0 {
		logDirectory = options["log-directory"][n-1]
	}
	if err := os.MkdirAll(logDirectory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, logDirectory, err)
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      defaultLogFile,
		Size:      1024 * 1024,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			"main":            "info",
			logger.DefaultTag: "critical",
		},
	}
	if verbose {
		logging.Levels["main"] = "debug"
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	sorted := len(options["sorted"]) > 0
	log.Infof("count: %d  range: %d  seed: %d  sorted: %v", count, keyRange, seed, sorted)

	data, err := makeEntries(int64(seed), count, keyRange, sorted)
	if nil != err {
		log.Criticalf("data error: %s", err)
		exitwithstatus.Message("%s: data error: %s", program, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "entries: %d\n", len(data))
	}

	results, err := bench(data, builders, log)
	if nil != err {
		log.Criticalf("bench error: %s", err)
		exitwithstatus.Message("%s: bench error: %s", program, err)
	}
	printResults(os.Stdout, results)
}

// last occurrence of an integer option, or the default
func intOption(options map[string][]string, name string, value int) (int, error) {
	n := len(options[name])
	if 0 == n {
		return value, nil
	}
	return strconv.Atoi(options[name][n-1])
}

func makeEntries(seed int64, count int, keyRange int, sorted bool) ([]bst.Entry, error) {
	if sorted {
		return dataset.Sequence(count)
	}
	return dataset.Random(seed, count, keyRange)
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] [--count=N] [--range=N] [--seed=N] [--sorted] [--log-directory=DIR]\n\n", program)
	fmt.Printf("  --count=N          (-n)  - number of entries, default: %d\n", defaultCount)
	fmt.Printf("  --range=N          (-r)  - keys are in [0, N], default: %d\n", defaultRange)
	fmt.Printf("  --seed=N           (-s)  - random seed, default: 0\n")
	fmt.Printf("  --sorted           (-S)  - ascending keys 0..count-1 instead of random\n")
	fmt.Printf("  --log-directory=D  (-l)  - log file directory, default: system temporary directory\n")
	fmt.Printf("\n")
}
