// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ccwallet/addrmgr"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	loose := 0
	addresses := m.wallet.Addresses.AllAddresses()
	for _, r := range addresses {
		if r.Loose {
			loose += 1
		}
	}

	info := struct {
		Version      string        `json:"version"`
		Chain        string        `json:"chain"`
		Testnet      bool          `json:"testnet"`
		Database     string        `json:"database"`
		Backend      string        `json:"backend"`
		Addresses    int           `json:"addresses"`
		Loose        int           `json:"loose"`
		Transactions int           `json:"transactions"`
		State        addrmgr.State `json:"state"`
	}{
		Version:      version,
		Chain:        m.config.Chain,
		Testnet:      m.wallet.Addresses.Testnet(),
		Database:     m.config.Database.Name,
		Backend:      m.config.Fetcher.Backend,
		Addresses:    len(addresses),
		Loose:        loose,
		Transactions: len(m.wallet.Transactions.TransactionIds()),
		State:        m.wallet.Addresses.State(),
	}
	return printJson(m.w, info)
}
