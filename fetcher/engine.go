// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/background"
	"github.com/bitmark-inc/ccwallet/counter"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

// DefaultInterval - pause between sweeps
const DefaultInterval = time.Second

type engineState int

const (
	stateIdle engineState = iota
	stateRunning
	stateStopped
)

// Stats - engine activity counters
type Stats struct {
	Sweeps   uint64 // completed or aborted sweeps
	Scans    uint64 // successful address scans
	Errors   uint64 // failed address scans
	Queued   uint64 // ids waiting for Update
	Ingested uint64 // ids reported new by the store
}

// Engine - background sweeper
type Engine struct {
	sync.Mutex // addresses, running and state

	log       *logger.L
	backend   backend.Backend
	source    AddressSource
	store     Store
	interval  time.Duration
	selfDrain bool

	addresses  []string
	running    bool
	state      engineState
	background *background.T

	queue idQueue

	sweeps   counter.Counter
	scans    counter.Counter
	errors   counter.Counter
	ingested counter.Counter
}

// NewEngine - create an idle engine
//
// a zero or negative interval selects DefaultInterval
func NewEngine(b backend.Backend, source AddressSource, store Store, interval time.Duration, selfDrain bool) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{
		log:       logger.New("fetcher"),
		backend:   b,
		source:    source,
		store:     store,
		interval:  interval,
		selfDrain: selfDrain,
		state:     stateIdle,
	}
}

// Update - refresh the address snapshot then drain the queue into the
// store
//
// returns true if any id was new; safe to call at any time
func (e *Engine) Update() bool {
	e.refresh()

	anyNew := false
	for {
		id, ok := e.queue.get()
		if !ok {
			break
		}
		if e.store.Ingest(id) {
			e.ingested.Increment()
			anyNew = true
		}
	}
	return anyNew
}

func (e *Engine) refresh() {
	addresses := e.source.AddressStrings()

	e.Lock()
	e.addresses = addresses
	e.Unlock()
}

// Start - launch the worker
//
// the address snapshot is refreshed first so the first sweep has work
// even if Update has not been called
func (e *Engine) Start() error {
	e.refresh()

	e.Lock()
	defer e.Unlock()

	switch e.state {
	case stateRunning:
		return fault.ErrAlreadyStarted
	case stateStopped:
		return fault.ErrEngineStopped
	}

	e.running = true
	e.state = stateRunning
	e.background = background.Start(background.Processes{e}, nil)

	e.log.Infof("started  interval: %s  self drain: %t", e.interval, e.selfDrain)
	return nil
}

// Stop - disconnect the backend and wait for the worker to exit
//
// no backend call is made by this engine after Stop returns
func (e *Engine) Stop() error {
	e.Lock()
	if stateRunning != e.state {
		e.Unlock()
		return fault.ErrNotRunning
	}
	e.backend.Disconnect()
	e.running = false
	e.state = stateStopped
	bg := e.background
	e.background = nil
	e.Unlock()

	bg.Stop()

	e.log.Info("stopped")
	e.log.Flush()
	return nil
}

// Stats - snapshot of the counters
func (e *Engine) Stats() Stats {
	return Stats{
		Sweeps:   e.sweeps.Uint64(),
		Scans:    e.scans.Uint64(),
		Errors:   e.errors.Uint64(),
		Queued:   uint64(e.queue.length()),
		Ingested: e.ingested.Uint64(),
	}
}

func (e *Engine) isRunning() bool {
	e.Lock()
	defer e.Unlock()
	return e.running
}

// Run - background process loop
func (e *Engine) Run(args interface{}, shutdown <-chan struct{}) {

	// cancel in flight backend requests on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	e.log.Info("worker starting…")

loop:
	for e.isRunning() {
		e.sweep(ctx)

		if e.selfDrain {
			if e.Update() {
				e.log.Debug("new transactions")
			}
		}

		select {
		case <-shutdown:
			break loop
		case <-time.After(e.interval):
		}
	}

	e.log.Info("worker finished")
}

// scan each address of the snapshot, abandoning the sweep as soon as
// the engine is stopped
func (e *Engine) sweep(ctx context.Context) {
	e.Lock()
	snapshot := make([]string, len(e.addresses))
	copy(snapshot, e.addresses)
	e.Unlock()

	defer e.sweeps.Increment()

	for _, address := range snapshot {
		if !e.isRunning() {
			return
		}
		if err := e.scan(ctx, address); nil != err {
			e.errors.Increment()
			e.log.Errorf("address: %s  scan error: %s", address, err)
			continue
		}
		e.scans.Increment()
	}
}

// one address; a panic from the backend is returned as an error
func (e *Engine) scan(ctx context.Context, address string) (err error) {
	defer func() {
		if r := recover(); nil != r {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return scanAddress(ctx, e.backend, address, func(_ string, txId string) {
		e.queue.put(txId)
	})
}
