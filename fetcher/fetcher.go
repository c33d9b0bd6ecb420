// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"context"

	"github.com/bitmark-inc/ccwallet/backend"
)

// Store - destination for discovered transaction ids
type Store interface {
	// Ingest - true if the id gave new data
	Ingest(txId string) bool
}

// AddressSource - the current wallet address list
type AddressSource interface {
	AddressStrings() []string
}

// Hook - what to do with each id found at an address
type Hook func(address string, txId string)

// list the ids at one address and pass each to the hook
func scanAddress(ctx context.Context, b backend.Backend, address string, hook Hook) error {
	ids, err := b.TransactionIds(ctx, address)
	if nil != err {
		return err
	}
	for _, id := range ids {
		hook(address, id)
	}
	return nil
}
