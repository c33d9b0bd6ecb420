// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/logger"
)

// Simple - blocking fetcher for on demand refresh
type Simple struct {
	log     *logger.L
	backend backend.Backend
	source  AddressSource
	store   Store
}

// NewSimple - create a synchronous fetcher
func NewSimple(b backend.Backend, source AddressSource, store Store) *Simple {
	return &Simple{
		log:     logger.New("fetcher"),
		backend: b,
		source:  source,
		store:   store,
	}
}

// Scan - ingest the ids found at one address
//
// returns the number of ids that were new to the store
func (s *Simple) Scan(ctx context.Context, address string) (int, error) {
	n := 0
	err := scanAddress(ctx, s.backend, address, func(address string, txId string) {
		if s.store.Ingest(txId) {
			s.log.Debugf("address: %s  new transaction: %s", address, txId)
			n += 1
		}
	})
	return n, err
}

// ScanAll - scan every address in order, stopping at the first error
func (s *Simple) ScanAll(ctx context.Context) (int, error) {
	total := 0
	for _, address := range s.source.AddressStrings() {
		n, err := s.Scan(ctx, address)
		total += n
		if nil != err {
			return total, fmt.Errorf("scan: %s: %w", address, err)
		}
	}
	s.log.Infof("scan complete: new transactions: %d", total)
	return total, nil
}

// Disconnect - release the backend
func (s *Simple) Disconnect() {
	s.backend.Disconnect()
}
