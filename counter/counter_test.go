// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/ccwallet/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Add(3)

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}
}

// many goroutines must not lose updates
func TestConcurrent(t *testing.T) {

	const workers = 16
	const each = 1000

	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*each != c.Uint64() {
		t.Errorf("lost updates: %d  expected: %d", c.Uint64(), workers*each)
	}
}
