// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived goroutines that can be
// shut down together
package background

// the shutdown and completed channels for a background
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle type
type T struct {
	s []shutdown
}

// Process - type signature for background process
//
// Run must return promptly after the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for all of them
// to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, s := range t.s {
		close(s.shutdown)
	}

	// wait for finished
	for _, s := range t.s {
		<-s.finished
	}
}
