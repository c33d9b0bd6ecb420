// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ccwallet/fault"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		testnet  bool
		expected string
	}{
		{"", false, Esplora},
		{"esplora", false, Esplora},
		{"ESPLORA", true, Esplora},
		{"blockchain.info", false, BlockchainInfo},
		{"electrum", false, Electrum},
		{"blockchain.info", true, Esplora},
		{"electrum", true, Esplora},
	}

	for i, c := range testCases {
		b, err := New(c.name, c.testnet, nil)
		assert.Nil(t, err, "%d: %q", i, c.name)

		actual := ""
		switch b.(type) {
		case *esplora:
			actual = Esplora
		case *blockchainInfo:
			actual = BlockchainInfo
		case *electrum:
			actual = Electrum
		}
		assert.Equal(t, c.expected, actual, "%d: %q testnet: %t", i, c.name, c.testnet)
		b.Disconnect()
	}
}

func TestNewUnknown(t *testing.T) {
	for _, name := range []string{"chromanode", "helloblock", "abe_testnet", "nothing"} {
		b, err := New(name, false, nil)
		assert.Nil(t, b, "backend: %q", name)
		assert.Equal(t, fault.ErrUnknownBackend, err, "backend: %q", name)

		// unknown is rejected even where substitution would apply
		_, err = New(name, true, nil)
		assert.Equal(t, fault.ErrUnknownBackend, err, "testnet backend: %q", name)
	}
}

func TestValid(t *testing.T) {
	for _, name := range []string{"", " Esplora ", "blockchain.info", "ELECTRUM"} {
		assert.True(t, Valid(name), "valid: %q", name)
	}
	for _, name := range []string{"chromanode", "no-such", "blockchain"} {
		assert.False(t, Valid(name), "invalid: %q", name)
	}
	assert.Equal(t, Default, Canonical("  "), "empty is default")
	assert.Equal(t, BlockchainInfo, Canonical(" Blockchain.Info"), "canonical")
}

func TestEsploraDefaultURL(t *testing.T) {
	main := newEsplora(nil, false, HTTPConfiguration{})
	assert.Equal(t, esploraMainnetURL, main.client.url, "mainnet")

	test := newEsplora(nil, true, HTTPConfiguration{})
	assert.Equal(t, esploraTestnetURL, test.client.url, "testnet")

	custom := newEsplora(nil, true, HTTPConfiguration{URL: "http://localhost:3002/"})
	assert.Equal(t, "http://localhost:3002", custom.client.url, "trailing slash removed")
}
