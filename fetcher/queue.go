// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"sync"
)

// unbounded FIFO of transaction ids, many producers one consumer
type idQueue struct {
	sync.Mutex
	items []string
}

// never blocks
func (q *idQueue) put(id string) {
	q.Lock()
	q.items = append(q.items, id)
	q.Unlock()
}

// the oldest id, false if empty
func (q *idQueue) get() (string, bool) {
	q.Lock()
	defer q.Unlock()
	if 0 == len(q.items) {
		return "", false
	}
	id := q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	if 0 == len(q.items) {
		q.items = nil
	}
	return id, true
}

func (q *idQueue) length() int {
	q.Lock()
	defer q.Unlock()
	return len(q.items)
}
