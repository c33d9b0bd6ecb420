// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk wallet data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. count        = big endian uint64 (8 bytes)
// 4. txId         = transaction id as 64 character lower case hex
// 5. descriptor   = color definition descriptor string
//
// Configuration:
//
//	C ++ key                   - wallet configuration store
//	                             data: JSON or raw bytes, depending on key
//
//	   master_key              - hex encoded master secret (write once)
//	   address_state           - {genesis_color_sets, color_set_states}
//	   loose_addresses         - list of imported key descriptors
//	   testnet                 - network flag
//
// Colors:
//
//	M ++ descriptor            - color id
//	                             data: count
//	N ++ "next"                - next color id to allocate
//	                             data: count
//
// Transactions:
//
//	T ++ txId                  - transaction ids discovered at wallet addresses
//	                             data: first seen time (big endian uint64 unix seconds)
package storage
