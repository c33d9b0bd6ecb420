// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txstore records the ids of transactions that the fetchers
// have discovered for wallet addresses
//
// ids are kept in the storage Transactions pool keyed by the 32 byte
// transaction hash, the value is the big endian unix time of the first
// ingestion.  A time limited in-memory cache answers repeated
// ingestions of the same id without touching the database.
package txstore
