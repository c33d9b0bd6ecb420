// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txstore

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ccwallet/counter"
	"github.com/bitmark-inc/ccwallet/storage"
	"github.com/bitmark-inc/logger"
)

const (
	seenExpiry  = time.Hour
	seenCleanup = 2 * time.Hour
)

// Handle - the parts of a storage pool used by the store
type Handle interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Put(key []byte, value []byte)
	Each(f func(storage.Element) bool)
}

// Store - persistent set of discovered transaction ids
type Store struct {
	sync.Mutex

	log      *logger.L
	pool     Handle
	seen     *cache.Cache
	ingested counter.Counter
	rejected counter.Counter
}

// New - create a store over a pool
func New(pool Handle) *Store {
	return &Store{
		log:  logger.New("txstore"),
		pool: pool,
		seen: cache.New(seenExpiry, seenCleanup),
	}
}

// Ingest - record a transaction id
//
// returns true only if the id was not already known; malformed ids are
// logged and ignored
func (s *Store) Ingest(txId string) bool {
	hash, err := chainhash.NewHashFromStr(txId)
	if nil != err || 2*chainhash.HashSize != len(txId) {
		s.log.Warnf("ignore malformed transaction id: %q", txId)
		s.rejected.Increment()
		return false
	}
	id := hash.String()

	s.Lock()
	defer s.Unlock()

	if _, found := s.seen.Get(id); found {
		return false
	}

	key := hash[:]
	if s.pool.Has(key) {
		s.seen.SetDefault(id, true)
		return false
	}

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(time.Now().Unix()))
	s.pool.Put(key, value)
	s.seen.SetDefault(id, true)
	s.ingested.Increment()

	s.log.Debugf("ingested: %s", id)
	return true
}

// Has - true if the id has been ingested
func (s *Store) Has(txId string) bool {
	hash, err := chainhash.NewHashFromStr(txId)
	if nil != err {
		return false
	}
	if _, found := s.seen.Get(hash.String()); found {
		return true
	}
	return s.pool.Has(hash[:])
}

// FirstSeen - time of the first ingestion of an id
func (s *Store) FirstSeen(txId string) (time.Time, bool) {
	hash, err := chainhash.NewHashFromStr(txId)
	if nil != err {
		return time.Time{}, false
	}
	value := s.pool.Get(hash[:])
	if 8 != len(value) {
		return time.Time{}, false
	}
	return time.Unix(int64(binary.BigEndian.Uint64(value)), 0), true
}

// TransactionIds - every stored id in key order
func (s *Store) TransactionIds() []string {
	ids := []string{}
	s.pool.Each(func(e storage.Element) bool {
		hash, err := chainhash.NewHash(e.Key)
		if nil != err {
			s.log.Errorf("corrupt transaction key: %x", e.Key)
			return true
		}
		ids = append(ids, hash.String())
		return true
	})
	return ids
}

// Stats - ids ingested and rejected since creation
func (s *Store) Stats() (ingested uint64, rejected uint64) {
	return s.ingested.Uint64(), s.rejected.Uint64()
}
