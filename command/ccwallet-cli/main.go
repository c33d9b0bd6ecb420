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

	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/configuration"
	"github.com/bitmark-inc/ccwallet/wallet"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	config  *configuration.Configuration
	wallet  *wallet.Wallet
	backend backend.Backend
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ccwallet-cli"
	app.Usage = "colored coin wallet address management"
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
			Name:   "config-file, c",
			Value:  "",
			Usage:  "*wallet configuration `FILE`",
			EnvVar: "CCWALLET_CONFIG",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list all wallet addresses",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "keys, k",
					Usage: " include exported private keys",
				},
				cli.StringSliceFlag{
					Name:  "color, C",
					Usage: " only addresses sharing a color with descriptor `DESC`",
				},
			},
			Action: runList,
		},
		{
			Name:      "new",
			Usage:     "allocate the next address of a color set",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "color, C",
					Usage: "*color definition descriptor `DESC`, repeat for more colors",
				},
			},
			Action: runNew,
		},
		{
			Name:      "genesis",
			Usage:     "allocate a new genesis address or show an existing one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "index, i",
					Value: -1,
					Usage: " show genesis address `N` instead of allocating",
				},
			},
			Action: runGenesis,
		},
		{
			Name:      "bind",
			Usage:     "bind a genesis address to the color set issued from it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*genesis `ADDRESS`",
				},
				cli.StringSliceFlag{
					Name:  "color, C",
					Usage: "*color definition descriptor `DESC`, repeat for more colors",
				},
			},
			Action: runBind,
		},
		{
			Name:      "find",
			Usage:     "find a wallet address by address or exported key",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+bitcoin `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+exported private `WIF`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "import",
			Usage:     "add an externally generated private key to the wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*private key `WIF`",
				},
				cli.StringSliceFlag{
					Name:  "color, C",
					Usage: " color definition descriptor `DESC`, repeat for more colors",
				},
			},
			Action: runImport,
		},
		{
			Name:      "scan",
			Usage:     "fetch transactions for wallet addresses once",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " only scan `ADDRESS`",
				},
				cli.DurationFlag{
					Name:  "timeout, t",
					Value: defaultScanTimeout,
					Usage: " give up after `DURATION`",
				},
			},
			Action: runScan,
		},
		{
			Name:   "transactions",
			Usage:  "list the stored transaction ids",
			Action: runTransactions,
		},
		{
			Name:   "info",
			Usage:  "display wallet status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ccwallet-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the wallet
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("missing --config-file option")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		conf, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		// log to file only, console output belongs to the command
		conf.Logging.Console = false
		err = logger.Initialise(conf.Logging)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "database: %s\n", conf.Database.Name)
		}

		// no network traffic until a command calls the backend
		b, err := conf.Backend()
		if nil != err {
			logger.Finalise()
			return err
		}

		wlt, err := wallet.Open(conf.Database.Name, conf.Testnet())
		if nil != err {
			b.Disconnect()
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  conf,
			wallet:  wlt,
			backend: b,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// release the wallet
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.backend.Disconnect()
		m.wallet.Close()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
