// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fetcher

import (
	"time"

	"github.com/bitmark-inc/ccwallet/backend"
)

// Configuration - fetcher section of the configuration file
type Configuration struct {
	Backend   string `gluamapper:"backend" json:"backend"`
	Interval  int    `gluamapper:"interval" json:"interval"` // seconds
	SelfDrain bool   `gluamapper:"self_drain" json:"self_drain"`

	Esplora        backend.HTTPConfiguration     `gluamapper:"esplora" json:"esplora"`
	BlockchainInfo backend.HTTPConfiguration     `gluamapper:"blockchaininfo" json:"blockchaininfo"`
	Electrum       backend.ElectrumConfiguration `gluamapper:"electrum" json:"electrum"`
}

// Backends - settings for backend.New
func (c *Configuration) Backends() *backend.Configuration {
	return &backend.Configuration{
		Esplora:        c.Esplora,
		BlockchainInfo: c.BlockchainInfo,
		Electrum:       c.Electrum,
	}
}

// PollInterval - pause between sweeps
func (c *Configuration) PollInterval() time.Duration {
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return time.Duration(c.Interval) * time.Second
}
