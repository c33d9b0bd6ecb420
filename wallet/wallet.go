// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/addrmgr"
	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fetcher"
	"github.com/bitmark-inc/ccwallet/storage"
	"github.com/bitmark-inc/ccwallet/txstore"
	"github.com/bitmark-inc/logger"
)

// Wallet - the open wallet
type Wallet struct {
	log *logger.L

	Colors       *colorset.StoreMap
	Addresses    *addrmgr.Manager
	Transactions *txstore.Store
}

// Open - open or create the wallet database
func Open(database string, testnet bool) (*Wallet, error) {
	log := logger.New("wallet")

	log.Infof("open database: %q  testnet: %t", database, testnet)

	err := storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		return nil, err
	}

	colors := colorset.NewStoreMap(storage.Pool.ColorIds, storage.Pool.ColorCount)

	manager, err := addrmgr.New(colors, storage.Pool.Config, testnet)
	if nil != err {
		storage.Finalise()
		return nil, err
	}

	w := &Wallet{
		log:          log,
		Colors:       colors,
		Addresses:    manager,
		Transactions: txstore.New(storage.Pool.Transactions),
	}
	log.Infof("opened: %s", manager)

	return w, nil
}

// Close - release the database
func (w *Wallet) Close() {
	ingested, rejected := w.Transactions.Stats()
	w.log.Infof("close: transactions ingested: %d  rejected: %d", ingested, rejected)
	storage.Finalise()
}

// ColorSet - resolve a descriptor list against the wallet color map
func (w *Wallet) ColorSet(descriptors []string) (*colorset.ColorSet, error) {
	return colorset.New(w.Colors, descriptors)
}

// KnownColorSet - like ColorSet, but an unseen descriptor is an error
// instead of a new color id
func (w *Wallet) KnownColorSet(descriptors []string) (*colorset.ColorSet, error) {
	return colorset.New(w.Colors.Known(), descriptors)
}

// Simple - a one shot fetcher over all wallet addresses
func (w *Wallet) Simple(b backend.Backend) *fetcher.Simple {
	return fetcher.NewSimple(b, w.Addresses, w.Transactions)
}

// Engine - the background fetcher over all wallet addresses
func (w *Wallet) Engine(b backend.Backend, conf *fetcher.Configuration) *fetcher.Engine {
	return fetcher.NewEngine(b, w.Addresses, w.Transactions, conf.PollInterval(), conf.SelfDrain)
}

// AddressInfo - printable form of an address record
type AddressInfo struct {
	Address     string   `json:"address"`
	ColorSet    []string `json:"color_set"`
	ColorIds    []uint64 `json:"color_ids"`
	Index       int      `json:"index"`
	Genesis     bool     `json:"genesis,omitempty"`
	Loose       bool     `json:"loose,omitempty"`
	ExportedKey string   `json:"exported_key,omitempty"`
}

// Describe - convert a record for output, the key is only included on
// request
func Describe(r *address.Record, withKey bool) AddressInfo {
	info := AddressInfo{
		Address:  r.Address,
		ColorSet: r.ColorSet.Data(),
		ColorIds: r.ColorSet.ColorIds(),
		Index:    r.Index,
		Genesis:  r.IsGenesis(),
		Loose:    r.Loose,
	}
	if withKey {
		info.ExportedKey = r.ExportedKey()
	}
	return info
}
