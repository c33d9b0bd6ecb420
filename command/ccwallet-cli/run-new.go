// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/wallet"
)

func runNew(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	colors, err := checkColors(c.StringSlice("color"))
	if nil != err {
		return err
	}

	cs, err := m.wallet.ColorSet(colors)
	if nil != err {
		return err
	}

	r, err := m.wallet.Addresses.NewAddress(cs)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "new address: %s\n", r)
	}
	return printJson(m.w, wallet.Describe(r, false))
}
