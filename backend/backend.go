// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"strings"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

// backend names
const (
	Esplora        = "esplora"
	BlockchainInfo = "blockchain.info"
	Electrum       = "electrum"

	Default = Esplora
)

// Backend - a source of transaction ids for addresses
type Backend interface {
	// TransactionIds - ids of the transactions holding unspent outputs
	// of the address, without duplicates
	TransactionIds(ctx context.Context, address string) ([]string, error)

	// Disconnect - release any connection; later calls fail with
	// fault.ErrBackendDisconnected
	Disconnect()
}

// Configuration - settings for every backend, only the selected one
// is used
type Configuration struct {
	Esplora        HTTPConfiguration     `gluamapper:"esplora" json:"esplora"`
	BlockchainInfo HTTPConfiguration     `gluamapper:"blockchaininfo" json:"blockchaininfo"`
	Electrum       ElectrumConfiguration `gluamapper:"electrum" json:"electrum"`
}

// HTTPConfiguration - a REST service
//
// an empty URL selects the public service for the network; Rate is
// the maximum number of requests per second, zero selects the default
type HTTPConfiguration struct {
	URL        string  `gluamapper:"url" json:"url"`
	Rate       float64 `gluamapper:"rate" json:"rate"`
	MaxRetries int     `gluamapper:"max_retries" json:"max_retries"`
}

// ElectrumConfiguration - an electrum server
type ElectrumConfiguration struct {
	Server string `gluamapper:"server" json:"server"`
	Port   int    `gluamapper:"port" json:"port"`
}

// names allowed on testnet, anything else is replaced by Default
var testnetAllowed = map[string]bool{
	Esplora: true,
}

// Canonical - normalised form of a backend name, empty selects Default
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return Default
	}
	return name
}

// Valid - true if name selects a known backend
func Valid(name string) bool {
	switch Canonical(name) {
	case Esplora, BlockchainInfo, Electrum:
		return true
	default:
		return false
	}
}

// New - create the named backend
//
// an unknown name fails before any network activity
func New(name string, testnet bool, conf *Configuration) (Backend, error) {
	log := logger.New("backend")

	if nil == conf {
		conf = &Configuration{}
	}

	name = Canonical(name)
	if !Valid(name) {
		log.Errorf("unknown backend: %q", name)
		return nil, fault.ErrUnknownBackend
	}

	if testnet && !testnetAllowed[name] {
		log.Warnf("backend: %s not available on testnet, using: %s", name, Default)
		name = Default
	}

	log.Infof("backend: %s  testnet: %t", name, testnet)

	switch name {
	case BlockchainInfo:
		return newBlockchainInfo(log, conf.BlockchainInfo), nil
	case Electrum:
		return newElectrum(log, conf.Electrum), nil
	default:
		return newEsplora(log, testnet, conf.Esplora), nil
	}
}

// append ids not already present, preserving order
func appendUnique(ids []string, seen map[string]struct{}, id string) []string {
	if _, ok := seen[id]; ok {
		return ids
	}
	seen[id] = struct{}{}
	return append(ids, id)
}
