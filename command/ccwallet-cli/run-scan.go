// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/fault"
)

const defaultScanTimeout = 5 * time.Minute

func runScan(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := m.wallet.Simple(m.backend)

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	addr := c.String("address")
	if m.verbose {
		fmt.Fprintf(m.e, "backend: %q  address: %q\n", m.config.Fetcher.Backend, addr)
	}

	var n int
	var err error
	if "" == addr {
		n, err = s.ScanAll(ctx)
	} else {
		if nil == m.wallet.Addresses.FindByAddress(addr) {
			return fault.ErrWalletAddressNotFound
		}
		n, err = s.Scan(ctx, addr)
	}
	if nil != err {
		return err
	}

	out := struct {
		New   int `json:"new"`
		Total int `json:"total"`
	}{
		New:   n,
		Total: len(m.wallet.Transactions.TransactionIds()),
	}
	return printJson(m.w, out)
}
