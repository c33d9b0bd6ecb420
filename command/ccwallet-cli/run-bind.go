// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/ccwallet/wallet"
)

func runBind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	addr, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	colors, err := checkColors(c.StringSlice("color"))
	if nil != err {
		return err
	}

	r := m.wallet.Addresses.FindByAddress(addr)
	if nil == r {
		return fault.ErrWalletAddressNotFound
	}

	// the manager panics on a non genesis record
	if !r.IsGenesis() {
		return fault.ErrWalletAddressNotGenesis
	}

	cs, err := m.wallet.ColorSet(colors)
	if nil != err {
		return err
	}

	err = m.wallet.Addresses.BindGenesisColor(r, cs)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bound: %s\n", r)
	}
	return printJson(m.w, wallet.Describe(r, false))
}
