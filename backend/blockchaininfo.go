// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

const blockchainInfoURL = "https://blockchain.info"

// reply body of an address without unspent outputs
var noFreeOutputs = []byte("No free outputs to spend")

type blockchainInfoOutput struct {
	TxHashBigEndian string `json:"tx_hash_big_endian"`
	TxOutputN       uint32 `json:"tx_output_n"`
	Value           int64  `json:"value"`
	Confirmations   int64  `json:"confirmations"`
}

type blockchainInfoReply struct {
	UnspentOutputs []blockchainInfoOutput `json:"unspent_outputs"`
}

type blockchainInfo struct {
	log    *logger.L
	client *restClient
}

func newBlockchainInfo(log *logger.L, conf HTTPConfiguration) *blockchainInfo {
	return &blockchainInfo{
		log:    log,
		client: newRestClient(log, conf, blockchainInfoURL),
	}
}

// TransactionIds - GET /unspent?active=<address>
func (b *blockchainInfo) TransactionIds(ctx context.Context, address string) ([]string, error) {
	path := "/unspent?active=" + url.QueryEscape(address)

	status, body, err := b.client.fetch(ctx, path)
	if nil != err {
		return nil, err
	}

	switch status {
	case http.StatusOK:
	case http.StatusInternalServerError:
		if bytes.Contains(body, noFreeOutputs) {
			return []string{}, nil
		}
		fallthrough
	default:
		return nil, fmt.Errorf("%w: status: %d on: %q", fault.ErrBackendRequestFailed, status, path)
	}

	var reply blockchainInfoReply
	if err := b.client.decode(path, body, &reply); nil != err {
		return nil, err
	}

	ids := make([]string, 0, len(reply.UnspentOutputs))
	seen := make(map[string]struct{}, len(reply.UnspentOutputs))
	for _, u := range reply.UnspentOutputs {
		hash, err := chainhash.NewHashFromStr(u.TxHashBigEndian)
		if nil != err {
			b.log.Warnf("address: %s  bad txid: %q", address, u.TxHashBigEndian)
			return nil, fault.ErrUnexpectedBackendReply
		}
		ids = appendUnique(ids, seen, hash.String())
	}
	return ids, nil
}

// Disconnect - cancel requests and refuse new ones
func (b *blockchainInfo) Disconnect() {
	b.client.disconnect()
}
