// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sorttree/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "sorttree"
	app.Usage = "build and inspect binary sort trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "variant, t",
			Value: "",
			Usage: " tree `VARIANT` [avl|bst] overrides the configuration",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " read entries from text `FILE` overrides the configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a tree and print it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "optimal, o",
					Usage: " build a minimum height unbalanced tree",
				},
				cli.BoolFlag{
					Name:  "values, d",
					Usage: " also print the values",
				},
			},
			Action: runBuild,
		},
		{
			Name:   "list",
			Usage:  "list entries in ascending key order",
			Action: runList,
		},
		{
			Name:      "search",
			Usage:     "look up one or more keys",
			ArgsUsage: "KEY...",
			Action:    runSearch,
		},
		{
			Name:      "delete",
			Usage:     "delete keys from an unbalanced tree and print the result",
			ArgsUsage: "KEY...",
			Action:    runDelete,
		},
		{
			Name:   "check",
			Usage:  "verify the tree invariants",
			Action: runCheck,
		},
		{
			Name:   "stats",
			Usage:  "display height and rotation counts",
			Action: runStats,
		},
		{
			Name:      "save",
			Usage:     "store the entries in a LevelDB database",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, D",
					Value: "",
					Usage: "*database `DIRECTORY`",
				},
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " key `PREFIX`",
				},
			},
			Action: runSave,
		},
		{
			Name:      "watch",
			Usage:     "rebuild whenever the source file changes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.DurationFlag{
					Name:  "interval, i",
					Value: time.Second,
					Usage: " minimum time between rebuilds `DURATION`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` rebuilds, 0 = until interrupted",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display sorttree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if err := configuration.override(c.GlobalString("variant"), c.GlobalString("file")); nil != err {
			return err
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", configuration)

		if verbose {
			fmt.Fprintf(e, "variant: %s  source: %s\n", configuration.Variant, configuration.Source.Kind)
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			m.log.Info("finished")
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
