// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"net/url"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

// public esplora services
const (
	esploraMainnetURL = "https://blockstream.info/api"
	esploraTestnetURL = "https://blockstream.info/testnet/api"
)

type esploraStatus struct {
	Confirmed   bool  `json:"confirmed"`
	BlockHeight int64 `json:"block_height,omitempty"`
}

type esploraUTXO struct {
	TxId   string        `json:"txid"`
	Vout   uint32        `json:"vout"`
	Status esploraStatus `json:"status"`
	Value  int64         `json:"value"`
}

type esplora struct {
	log    *logger.L
	client *restClient
}

func newEsplora(log *logger.L, testnet bool, conf HTTPConfiguration) *esplora {
	defaultURL := esploraMainnetURL
	if testnet {
		defaultURL = esploraTestnetURL
	}
	return &esplora{
		log:    log,
		client: newRestClient(log, conf, defaultURL),
	}
}

// TransactionIds - GET /address/<address>/utxo
func (e *esplora) TransactionIds(ctx context.Context, address string) ([]string, error) {
	var utxos []esploraUTXO
	err := e.client.fetchJSON(ctx, "/address/"+url.PathEscape(address)+"/utxo", &utxos)
	if nil != err {
		return nil, err
	}

	ids := make([]string, 0, len(utxos))
	seen := make(map[string]struct{}, len(utxos))
	for _, u := range utxos {
		hash, err := chainhash.NewHashFromStr(u.TxId)
		if nil != err {
			e.log.Warnf("address: %s  bad txid: %q", address, u.TxId)
			return nil, fault.ErrUnexpectedBackendReply
		}
		ids = appendUnique(ids, seen, hash.String())
	}
	e.log.Debugf("address: %s  outputs: %d  transactions: %d", address, len(utxos), len(ids))
	return ids, nil
}

// Disconnect - cancel requests and refuse new ones
func (e *esplora) Disconnect() {
	e.client.disconnect()
}
