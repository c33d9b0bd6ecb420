// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/wallet"
)

func runGenesis(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var r *address.Record
	var err error

	index := c.Int("index")
	if index >= 0 {
		r, err = m.wallet.Addresses.GenesisAddress(index)
	} else {
		r, err = m.wallet.Addresses.NewGenesisAddress()
		if nil == err && m.verbose {
			fmt.Fprintf(m.e, "new genesis address: %s\n", r)
		}
	}
	if nil != err {
		return err
	}

	return printJson(m.w, wallet.Describe(r, false))
}
