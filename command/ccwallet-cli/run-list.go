// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/wallet"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var records []*address.Record
	if colors := c.StringSlice("color"); len(colors) > 0 {
		// listing must not allocate color ids
		cs, err := m.wallet.KnownColorSet(colors)
		if nil != err {
			return err
		}
		records = m.wallet.Addresses.AddressesFor(cs)
	} else {
		records = m.wallet.Addresses.AllAddresses()
	}

	keys := c.Bool("keys")
	list := make([]wallet.AddressInfo, 0, len(records))
	for _, r := range records {
		list = append(list, wallet.Describe(r, keys))
	}

	return printJson(m.w, list)
}
