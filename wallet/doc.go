// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - open the wallet database and bind the color map,
// address manager and transaction store to its pools
//
// storage is a process wide singleton, so only one wallet can be open
// at a time.
package wallet
