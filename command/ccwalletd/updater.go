// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// the part of the fetcher engine the updater drives
type updatable interface {
	Update() bool
}

// periodically drains the fetcher queue when the engine does not
// drain itself
type updater struct {
	target   updatable
	interval time.Duration
}

func newUpdater(target updatable, interval time.Duration) *updater {
	return &updater{
		target:   target,
		interval: interval,
	}
}

// Run - background process loop, args is the main logger
func (u *updater) Run(args interface{}, shutdown <-chan struct{}) {

	log := args.(*logger.L)

	log.Info("updater: starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(u.interval):
			if u.target.Update() {
				log.Info("updater: new transactions")
			}
		}
	}

	log.Info("updater: stopped")
}
