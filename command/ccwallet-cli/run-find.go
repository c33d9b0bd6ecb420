// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/ccwallet/wallet"
)

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	addr := c.String("address")
	key := c.String("key")

	var r *address.Record
	switch {
	case "" != addr && "" == key:
		r = m.wallet.Addresses.FindByAddress(addr)
	case "" == addr && "" != key:
		r = m.wallet.Addresses.FindByExportedKey(key)
	default:
		return ErrSelectOne
	}

	if nil == r {
		return fault.ErrWalletAddressNotFound
	}

	return printJson(m.w, wallet.Describe(r, "" != key))
}
