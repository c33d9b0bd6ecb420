// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the supported bitcoin networks
package chain

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// names of all chains
const (
	Bitcoin = "bitcoin"
	Testnet = "testnet"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitcoin, Testnet:
		return true
	default:
		return false
	}
}

// IsTestnet - true for any chain that uses test coins
func IsTestnet(name string) bool {
	return Testnet == name
}

// Params - network parameters for the chain flag
func Params(testnet bool) *chaincfg.Params {
	if testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}
