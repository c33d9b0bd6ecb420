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

func runImport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := c.String("key")
	if "" == key {
		return ErrMissingKey
	}

	desc := address.LooseDescriptor{
		AddressData: key,
		ColorSet:    c.StringSlice("color"),
	}
	if nil == desc.ColorSet {
		desc.ColorSet = []string{}
	}

	r, err := m.wallet.Addresses.AddLooseAddress(desc)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "imported: %s\n", r)
	}
	return printJson(m.w, wallet.Describe(r, false))
}
