// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/configuration"
	"github.com/bitmark-inc/ccwallet/wallet"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// upper limit for a single foreground scan of every address
const scanTimeout = 5 * time.Minute

// setup command handler
//
// commands that cannot access the configuration file or the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "addresses", "list", "new-address", "new", "genesis-address", "genesis",
		"bind", "import", "transactions", "tx", "scan":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - run the fetcher, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  addresses [keys]           (list)   - list every wallet address as JSON\n")
		fmt.Printf("                                        'keys' includes the exported private keys\n")
		fmt.Printf("\n")

		fmt.Printf("  new-address DESC...        (new)    - allocate the next address for a color set\n")
		fmt.Printf("\n")

		fmt.Printf("  genesis-address [N]        (genesis)- allocate a new genesis address or show genesis N\n")
		fmt.Printf("\n")

		fmt.Printf("  bind ADDRESS DESC...                - bind a genesis address to the color set of its issue\n")
		fmt.Printf("\n")

		fmt.Printf("  import WIF [DESC...]                - add a loose private key to the wallet\n")
		fmt.Printf("\n")

		fmt.Printf("  transactions               (tx)     - list the stored transaction ids\n")
		fmt.Printf("\n")

		fmt.Printf("  scan                                - fetch transactions for every address once\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the wallet database is open so these commands can access and/or
// change the address space and transaction store
func processDataCommand(log *logger.L, arguments []string, options *configuration.Configuration, w *wallet.Wallet, b backend.Backend) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "addresses", "list":
		withKeys := len(arguments) > 0 && "keys" == arguments[0]
		list := []wallet.AddressInfo{}
		for _, r := range w.Addresses.AllAddresses() {
			list = append(list, wallet.Describe(r, withKeys))
		}
		printJson(list)

	case "new-address", "new":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing color descriptor argument")
		}
		cs, err := w.ColorSet(arguments)
		if nil != err {
			exitwithstatus.Message("color set: %q  error: %s", arguments, err)
		}
		r, err := w.Addresses.NewAddress(cs)
		if nil != err {
			exitwithstatus.Message("new address error: %s", err)
		}
		log.Infof("new address: %s", r)
		printJson(wallet.Describe(r, false))

	case "genesis-address", "genesis":
		if len(arguments) > 0 {
			n, err := strconv.Atoi(arguments[0])
			if nil != err {
				exitwithstatus.Message("genesis index: %q  error: %s", arguments[0], err)
			}
			r, err := w.Addresses.GenesisAddress(n)
			if nil != err {
				exitwithstatus.Message("genesis address: %d  error: %s", n, err)
			}
			printJson(wallet.Describe(r, false))
			break
		}
		r, err := w.Addresses.NewGenesisAddress()
		if nil != err {
			exitwithstatus.Message("genesis address error: %s", err)
		}
		log.Infof("new genesis address: %s", r)
		printJson(wallet.Describe(r, false))

	case "bind":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing address and color descriptor arguments")
		}
		r := w.Addresses.FindByAddress(arguments[0])
		if nil == r {
			exitwithstatus.Message("address: %q not in wallet", arguments[0])
		}
		if !r.IsGenesis() {
			exitwithstatus.Message("address: %q is not an unbound genesis address", arguments[0])
		}
		cs, err := w.ColorSet(arguments[1:])
		if nil != err {
			exitwithstatus.Message("color set: %q  error: %s", arguments[1:], err)
		}
		err = w.Addresses.BindGenesisColor(r, cs)
		if nil != err {
			exitwithstatus.Message("bind error: %s", err)
		}
		log.Infof("bound genesis address: %s", r)
		printJson(wallet.Describe(r, false))

	case "import":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing private key argument")
		}
		desc := address.LooseDescriptor{
			AddressData: arguments[0],
			ColorSet:    arguments[1:],
		}
		r, err := w.Addresses.AddLooseAddress(desc)
		if nil != err {
			exitwithstatus.Message("import error: %s", err)
		}
		log.Infof("imported address: %s", r)
		printJson(wallet.Describe(r, false))

	case "transactions", "tx":
		type item struct {
			TxId      string    `json:"txid"`
			FirstSeen time.Time `json:"first_seen"`
		}
		list := []item{}
		for _, id := range w.Transactions.TransactionIds() {
			seen, _ := w.Transactions.FirstSeen(id)
			list = append(list, item{TxId: id, FirstSeen: seen})
		}
		printJson(list)

	case "scan":
		log.Infof("scan: backend: %s", options.Fetcher.Backend)
		s := w.Simple(b)
		defer s.Disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()

		n, err := s.ScanAll(ctx)
		if nil != err {
			log.Errorf("scan error: %s", err)
			exitwithstatus.Message("scan error: %s", err)
		}
		fmt.Printf("new transactions: %d\n", n)

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// print out JSON
func printJson(message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
