// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/ccwallet/background"
	"github.com/bitmark-inc/ccwallet/configuration"
	"github.com/bitmark-inc/ccwallet/wallet"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s  testnet: %t", theConfiguration.Chain, theConfiguration.Testnet())
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "Fetcher", theConfiguration.Fetcher)

	// the backend is created first so a bad backend leaves the
	// database untouched
	b, err := theConfiguration.Backend()
	if nil != err {
		log.Criticalf("backend initialise error: %s", err)
		exitwithstatus.Message("backend initialise error: %s", err)
	}
	defer b.Disconnect()

	// open the wallet database and address space
	log.Info("initialise wallet")
	w, err := wallet.Open(theConfiguration.Database.Name, theConfiguration.Testnet())
	if nil != err {
		log.Criticalf("wallet initialise error: %s", err)
		exitwithstatus.Message("wallet initialise error: %s", err)
	}
	defer w.Close()

	// these commands are allowed to access the wallet database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration, w, b) {
		return
	}

	// start the fetcher background process
	log.Infof("start fetcher: backend: %q  interval: %s  self drain: %t",
		theConfiguration.Fetcher.Backend, theConfiguration.Fetcher.PollInterval(), theConfiguration.Fetcher.SelfDrain)
	engine := w.Engine(b, &theConfiguration.Fetcher)
	if err = engine.Start(); nil != err {
		log.Criticalf("fetcher start error: %s", err)
		exitwithstatus.Message("fetcher start error: %s", err)
	}

	// without self drain the queue is drained on the caller's schedule
	var updates *background.T
	if !theConfiguration.Fetcher.SelfDrain {
		updates = background.Start(background.Processes{
			newUpdater(engine, theConfiguration.Fetcher.PollInterval()),
		}, log)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")

	if nil != updates {
		updates.Stop()
	}
	if err = engine.Stop(); nil != err {
		log.Errorf("fetcher stop error: %s", err)
	}

	// final drain so nothing queued is lost
	engine.Update()

	stats := engine.Stats()
	log.Infof("fetcher: sweeps: %d  scans: %d  errors: %d  ingested: %d",
		stats.Sweeps, stats.Scans, stats.Errors, stats.Ingested)
}
