// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txstore_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ccwallet/storage"
	"github.com/bitmark-inc/ccwallet/txstore"
)

const (
	txA = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	txB = "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"
	txC = "9b0fc92260312ce44e74ef369f5c66bbb85848f2eddd5a7a1cde251e54ccfdd5"
)

func TestIngest(t *testing.T) {
	s := txstore.New(storage.Pool.Transactions)

	assert.False(t, s.Has(txA), "not yet ingested")
	assert.True(t, s.Ingest(txA), "first ingestion is new")
	assert.False(t, s.Ingest(txA), "second ingestion is not new")
	assert.True(t, s.Has(txA), "ingested")

	// case of the hex digits does not make a different id
	assert.False(t, s.Ingest(strings.ToUpper(txA)), "upper case duplicate")

	first, ok := s.FirstSeen(txA)
	assert.True(t, ok, "first seen")
	assert.WithinDuration(t, time.Now(), first, 5*time.Second, "first seen time")

	ingested, rejected := s.Stats()
	assert.Equal(t, uint64(1), ingested, "ingested count")
	assert.Equal(t, uint64(0), rejected, "rejected count")
}

func TestIngestMalformed(t *testing.T) {
	s := txstore.New(storage.Pool.Transactions)

	for _, id := range []string{"", "cafe", "zz" + txB[2:], txB + "00"} {
		assert.False(t, s.Ingest(id), "malformed: %q", id)
	}
	_, rejected := s.Stats()
	assert.Equal(t, uint64(4), rejected, "rejected count")
}

// a fresh store over the same pool does not report stored ids as new
func TestIngestPersistence(t *testing.T) {
	first := txstore.New(storage.Pool.Transactions)
	assert.True(t, first.Ingest(txB), "new in first store")

	second := txstore.New(storage.Pool.Transactions)
	assert.False(t, second.Ingest(txB), "known in second store")
	assert.True(t, second.Has(txB), "has in second store")

	ids := second.TransactionIds()
	assert.Contains(t, ids, txB, "listed")
}

func TestIngestConcurrent(t *testing.T) {
	s := txstore.New(storage.Pool.Transactions)

	results := make(chan bool, 20)
	var wg sync.WaitGroup
	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Ingest(txC)
		}()
	}
	wg.Wait()
	close(results)

	n := 0
	for isNew := range results {
		if isNew {
			n += 1
		}
	}
	assert.Equal(t, 1, n, "exactly one new ingestion")
}
