// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"
)

type transactionItem struct {
	TxId      string    `json:"txid"`
	FirstSeen time.Time `json:"first_seen"`
}

func runTransactions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store := m.wallet.Transactions
	list := []transactionItem{}
	for _, id := range store.TransactionIds() {
		seen, _ := store.FirstSeen(id)
		list = append(list, transactionItem{TxId: id, FirstSeen: seen})
	}
	return printJson(m.w, list)
}
