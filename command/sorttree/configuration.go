// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sorttree/configuration"
	"github.com/bitmark-inc/sorttree/dataset"
	"github.com/bitmark-inc/sorttree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultVariant = variantAVL

	defaultLogDirectory = "log"
	defaultLogFile      = "sorttree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// tree variants
const (
	variantAVL = "avl"
	variantBST = "bst"
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		"tree":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Variant       string               `gluamapper:"variant" json:"variant"`
	PrintValues   bool                 `gluamapper:"print_values" json:"print_values"`
	Source        dataset.Source       `gluamapper:"source" json:"source"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// with no file name the defaults are used and the log goes to the
// system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Variant:       defaultVariant,
		PrintValues:   false,
		Source:        dataset.DefaultSource(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	// absolute path to the main directory
	dataDirectory := ""

	if "" == configurationFileName {
		options.Logging.Directory = filepath.Join(os.TempDir(), "sorttree")
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	options.Variant = strings.ToLower(options.Variant)
	if variantAVL != options.Variant && variantBST != options.Variant {
		return nil, fault.ErrInvalidVariant
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	} else {
		options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Source.File,
		&options.Source.Database,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// apply command line settings
func (options *Configuration) override(variant string, fileName string) error {
	if "" != variant {
		variant = strings.ToLower(variant)
		if variantAVL != variant && variantBST != variant {
			return fault.ErrInvalidVariant
		}
		options.Variant = variant
	}
	if "" != fileName {
		f, err := filepath.Abs(fileName)
		if nil != err {
			return err
		}
		options.Source.Kind = dataset.KindFile
		options.Source.File = f
	}
	return nil
}
