// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/bitmark-inc/ccwallet/chain"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
)

// LooseDescriptor - persisted form of an imported key
type LooseDescriptor struct {
	AddressData string   `json:"address_data"` // WIF
	ColorSet    []string `json:"color_set"`
}

// NewLoose - wrap an imported WIF key into an address record
func NewLoose(wif string, cs *colorset.ColorSet, testnet bool) (*Record, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if nil != err {
		return nil, fault.ErrInvalidLooseAddress
	}
	if !decoded.IsForNet(chain.Params(testnet)) {
		return nil, fault.ErrInvalidLooseAddress
	}

	addr, err := encode(decoded.SerializePubKey(), testnet)
	if nil != err {
		return nil, err
	}

	r := &Record{
		ColorSet:   cs,
		Index:      LooseIndex,
		PrivateKey: decoded.PrivKey,
		PublicKey:  decoded.PrivKey.PubKey(),
		Address:    addr,
		Testnet:    testnet,
		Loose:      true,
		wif:        wif,
	}
	return r, nil
}
