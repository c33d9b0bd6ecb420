// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ccwallet/fetcher/mocks"
)

func TestUpdate(t *testing.T) {
	testCases := []struct {
		queued int
		new    int
	}{
		{0, 0},
		{1, 0},
		{1, 1},
		{5, 0},
		{5, 1},
		{5, 3},
		{5, 5},
	}

	for _, c := range testCases {
		ctl := gomock.NewController(t)

		b := mocks.NewMockBackend(ctl)
		source := mocks.NewMockAddressSource(ctl)
		store := mocks.NewMockStore(ctl)

		source.EXPECT().AddressStrings().Return([]string{"1a", "1b"}).Times(1)

		e := NewEngine(b, source, store, 0, false)

		calls := []*gomock.Call{}
		for i := 0; i < c.queued; i += 1 {
			id := fmt.Sprintf("%064x", i)
			e.queue.put(id)
			calls = append(calls, store.EXPECT().Ingest(id).Return(i < c.new).Times(1))
		}
		if len(calls) > 0 {
			gomock.InOrder(calls...)
		}

		actual := e.Update()
		assert.Equal(t, c.new > 0, actual, "queued: %d  new: %d", c.queued, c.new)
		assert.Equal(t, 0, e.queue.length(), "queue drained")
		assert.Equal(t, []string{"1a", "1b"}, e.addresses, "snapshot refreshed")
		assert.Equal(t, uint64(c.new), e.ingested.Uint64(), "ingested count")

		ctl.Finish()
	}
}

func TestQueueOrder(t *testing.T) {
	q := idQueue{}
	_, ok := q.get()
	assert.False(t, ok, "empty")

	for _, id := range []string{"a", "b", "c"} {
		q.put(id)
	}
	assert.Equal(t, 3, q.length(), "length")

	for _, expected := range []string{"a", "b", "c"} {
		id, ok := q.get()
		assert.True(t, ok, "get")
		assert.Equal(t, expected, id, "fifo")
	}
	_, ok = q.get()
	assert.False(t, ok, "drained")
}
