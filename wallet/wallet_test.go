// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/ccwallet/fetcher"
	"github.com/bitmark-inc/ccwallet/wallet"
)

const (
	colorA = "obc:cafe:0:0"
	colorB = "epobc:beef:1:310000"
)

func TestOpenReopen(t *testing.T) {
	database := filepath.Join(t.TempDir(), "wallet.leveldb")

	w, err := wallet.Open(database, false)
	require.NoError(t, err, "open")

	_, err = wallet.Open(database, false)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second open")

	cs, err := w.ColorSet([]string{colorB, colorA, colorA})
	require.NoError(t, err, "color set")
	assert.Equal(t, []string{colorB, colorA}, cs.Data(), "canonical")

	first, err := w.Addresses.NewAddress(cs)
	require.NoError(t, err, "new address")
	genesis, err := w.Addresses.NewGenesisAddress()
	require.NoError(t, err, "genesis address")

	assert.True(t, w.Transactions.Ingest("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"), "ingest")

	before := w.Addresses.AddressStrings()
	w.Close()

	w, err = wallet.Open(database, false)
	require.NoError(t, err, "reopen")
	defer w.Close()

	assert.Equal(t, before, w.Addresses.AddressStrings(), "address space")
	assert.Equal(t, first.Address, w.Addresses.FindByAddress(first.Address).Address, "colored address")
	assert.True(t, w.Addresses.FindByAddress(genesis.Address).IsGenesis(), "genesis address")
	assert.Equal(t, []string{"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"}, w.Transactions.TransactionIds(), "transactions")

	// same descriptors resolve to the same ids after a restart
	again, err := w.ColorSet([]string{colorA, colorB})
	require.NoError(t, err, "color set")
	assert.True(t, again.Equals(cs), "color ids")

	next, err := w.Addresses.NewAddress(again)
	require.NoError(t, err, "next address")
	assert.Equal(t, 1, next.Index, "index continues")
}

func TestOpenNetworkMismatch(t *testing.T) {
	database := filepath.Join(t.TempDir(), "wallet.leveldb")

	w, err := wallet.Open(database, true)
	require.NoError(t, err, "open")
	w.Close()

	_, err = wallet.Open(database, false)
	assert.Equal(t, fault.ErrNetworkMismatch, err, "mainnet open of testnet wallet")

	// the failed open must release the database
	w, err = wallet.Open(database, true)
	require.NoError(t, err, "open")
	w.Close()
}

func TestDescribe(t *testing.T) {
	database := filepath.Join(t.TempDir(), "wallet.leveldb")

	w, err := wallet.Open(database, false)
	require.NoError(t, err, "open")
	defer w.Close()

	r, err := w.Addresses.GenesisAddress(0)
	require.NoError(t, err, "genesis")

	info := wallet.Describe(r, false)
	assert.Equal(t, r.Address, info.Address, "address")
	assert.Equal(t, []string{}, info.ColorSet, "color set")
	assert.Empty(t, info.ColorIds, "color ids")
	assert.True(t, info.Genesis, "genesis")
	assert.Empty(t, info.ExportedKey, "no key")

	info = wallet.Describe(r, true)
	assert.Equal(t, r.ExportedKey(), info.ExportedKey, "key")

	cs, err := w.ColorSet([]string{colorA, colorset.Uncolored})
	require.NoError(t, err, "color set")
	colored, err := w.Addresses.NewAddress(cs)
	require.NoError(t, err, "new address")

	info = wallet.Describe(colored, false)
	assert.Equal(t, cs.ColorIds(), info.ColorIds, "color ids")
	assert.Equal(t, []uint64{0, 1}, info.ColorIds, "uncolored first")
}

func TestKnownColorSet(t *testing.T) {
	database := filepath.Join(t.TempDir(), "wallet.leveldb")

	w, err := wallet.Open(database, false)
	require.NoError(t, err, "open")
	defer w.Close()

	_, err = w.KnownColorSet([]string{colorA})
	assert.Equal(t, fault.ErrUnknownColorDescriptor, err, "before first use")

	cs, err := w.ColorSet([]string{colorA})
	require.NoError(t, err, "color set")

	known, err := w.KnownColorSet([]string{colorA, colorB})
	assert.Equal(t, fault.ErrUnknownColorDescriptor, err, "one unseen")
	assert.Nil(t, known, "no partial set")

	known, err = w.KnownColorSet([]string{colorA})
	require.NoError(t, err, "known")
	assert.True(t, known.Equals(cs), "same colors")

	// the failed lookups must not have allocated colorB
	idB, err := w.Colors.Resolve(colorB)
	require.NoError(t, err, "resolve B")
	assert.Equal(t, uint64(2), idB, "next id")
}

func TestFetchers(t *testing.T) {
	database := filepath.Join(t.TempDir(), "wallet.leveldb")

	w, err := wallet.Open(database, true)
	require.NoError(t, err, "open")
	defer w.Close()

	conf := &fetcher.Configuration{
		Backend:  backend.Esplora,
		Interval: 1,
	}
	b, err := backend.New(conf.Backend, true, conf.Backends())
	require.NoError(t, err, "backend")
	defer b.Disconnect()

	s := w.Simple(b)
	assert.NotNil(t, s, "simple")

	e := w.Engine(b, conf)
	assert.Equal(t, fault.ErrNotRunning, e.Stop(), "engine idle")
}
