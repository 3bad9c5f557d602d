// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	file    string
	keyType string
	tree    *avl.Tree
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-tool"
	app.Usage = "load key/value lines into an AVL tree and query it"
	app.Version = version
	app.HideVersion = true
	app.Metadata = make(map[string]interface{})

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " data `FILE` of \"key value\" lines",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: intKeys,
			Usage: " key `TYPE` [int|string]",
		},
	}

	orderFlag := cli.StringFlag{
		Name:  "order, o",
		Value: "in",
		Usage: " traversal `ORDER` [pre|in|post|level]",
	}

	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "display the tree sideways",
			Flags:  []cli.Flag{cli.BoolFlag{Name: "data, d", Usage: " show values, balance, height and size"}},
			Action: runPrint,
		},
		{
			Name:   "dump",
			Usage:  "single line nested form of the tree",
			Action: runDump,
		},
		{
			Name:      "get",
			Usage:     "value of a key",
			ArgsUsage: "KEY",
			Action:    runGet,
		},
		{
			Name:      "successor",
			Usage:     "smallest key greater than KEY",
			ArgsUsage: "KEY",
			Action:    runSuccessor,
		},
		{
			Name:      "predecessor",
			Usage:     "largest key less than KEY",
			ArgsUsage: "KEY",
			Action:    runPredecessor,
		},
		{
			Name:  "range",
			Usage: "pairs between two bounds in ascending order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, l",
					Value: "",
					Usage: " lower bound `KEY` [unbounded if omitted]",
				},
				cli.StringFlag{
					Name:  "from-kind",
					Value: "included",
					Usage: " lower bound `KIND` [included|excluded]",
				},
				cli.StringFlag{
					Name:  "to, u",
					Value: "",
					Usage: " upper bound `KEY` [unbounded if omitted]",
				},
				cli.StringFlag{
					Name:  "to-kind",
					Value: "included",
					Usage: " upper bound `KIND` [included|excluded]",
				},
			},
			Action: runRange,
		},
		{
			Name:   "traverse",
			Usage:  "all pairs in a traversal order",
			Flags:  []cli.Flag{orderFlag},
			Action: runTraverse,
		},
		{
			Name:   "check",
			Usage:  "verify balance, cached heights and counts",
			Action: runCheck,
		},
		{
			Name:  "watch",
			Usage: "reload and check the data file each time it changes",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 0,
					Usage: " stop after `N` reloads [0 = until interrupted]",
				},
			},
			Action: runWatch,
		},
		{
			Name:   "version",
			Usage:  "display version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// these commands do not need any data
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version":
			return nil
		}

		file := c.GlobalString("file")
		if "" == file {
			return fault.ErrDataFileNotFound
		}
		keyType := c.GlobalString("keys")

		if verbose {
			fmt.Fprintf(e, "reading data file: %s\n", file)
		}

		tree, err := loadFile(file, keyType)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			keyType: keyType,
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
