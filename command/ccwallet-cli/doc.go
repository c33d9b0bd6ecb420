// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ccwallet-cli - manage the addresses of a colored coin wallet
//
// the wallet database is locked while open, so this program cannot be
// used while ccwalletd is running on the same configuration
package main
