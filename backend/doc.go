// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package backend - external services that list the unspent
// transaction outputs of an address
//
// three services are supported:
//
//	esplora          HTTP REST, mainnet and testnet (default)
//	blockchain.info  HTTP REST, mainnet only
//	electrum         newline delimited JSON-RPC over TCP, mainnet only
//
// a backend reports only transaction ids; the caller decides what to
// do with them.
package backend
