// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fetcher - discover the transactions of wallet addresses
//
// Simple scans on demand and ingests every id straight into the store.
//
// Engine runs one background worker that sweeps a snapshot of the
// address list every interval and queues the ids it finds; Update
// refreshes the snapshot and drains the queue into the store.  With
// self drain enabled the worker calls Update itself after each sweep.
//
// a failing address is logged and skipped, the next sweep tries it
// again; there is no backoff
package fetcher

//go:generate mockgen -destination=mocks/backend.go -package=mocks github.com/bitmark-inc/ccwallet/backend Backend
//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/ccwallet/fetcher Store,AddressSource
