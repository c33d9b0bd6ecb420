// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
)

const colorA = "obc:cafe:0:0"

// fixed map: uncolored is 0, everything else gets the next id
type fixedMap map[string]uint64

func (m fixedMap) Resolve(descriptor string) (uint64, error) {
	if id, ok := m[descriptor]; ok {
		return id, nil
	}
	id := uint64(len(m) + 1)
	m[descriptor] = id
	return id, nil
}

// 0x00 0x01 … 0x3f
func testSecret() address.MasterSecret {
	s := make([]byte, address.MasterSecretLength)
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func mustColorSet(t *testing.T, descriptors ...string) *colorset.ColorSet {
	cs, err := colorset.New(fixedMap{}, descriptors)
	if nil != err {
		t.Fatalf("color set error: %s", err)
	}
	return cs
}

func TestGoldenVector(t *testing.T) {
	tests := []struct {
		descriptors []string
		index       int
		testnet     bool
		privateKey  string
		address     string
		wif         string
	}{
		{
			index:      0,
			privateKey: "440b19d277210b461c6c1fccd00bd2933896af2eb3f4df50951710dd04bd9ec1",
			address:    "14k72N5oebxBiL4ijuzwn2NN5WGr2kWX3W",
			wif:        "5JLFf7PM2M7SpVdJxFkjAUdFscQtrLf6DMrQykKMqE2CgjEp2G4",
		},
		{
			index:      0,
			testnet:    true,
			privateKey: "440b19d277210b461c6c1fccd00bd2933896af2eb3f4df50951710dd04bd9ec1",
			address:    "mjG4KRAnTdPSVSYLTUyKbwagwVsYwDY3qp",
			wif:        "926tErCtcaBanZ8babee35BDXGmc1WCHZJiN4NfsAxmFTiuBPj6",
		},
		{
			index:      1,
			privateKey: "d7c9b52887dec87e6b073ea1ea1dd442be6f7eee9b6428005ea140c0ad130d19",
			address:    "1KgZgLPkBrFbh1YFjiZpDk6pJatriXc2oj",
		},
		{
			index:      1,
			testnet:    true,
			privateKey: "d7c9b52887dec87e6b073ea1ea1dd442be6f7eee9b6428005ea140c0ad130d19",
			address:    "mzCWyPUizsgrU81sTHYC3fK9AaVZaMpKha",
		},
		{
			descriptors: []string{colorA},
			index:       0,
			privateKey:  "35301f70f2d009c6d986842fe2d87d1aeeb32cbe8f47e5a02156ecc02927c8e2",
			address:     "1LezLtqbCU7673uBspC8pKpioFGEB9FCJD",
		},
		{
			descriptors: []string{colorA},
			index:       1,
			privateKey:  "3e4f97e6191d71f2548e8afc0c91472e1ba4ca39e21ff0f0609381a5d9db8ca2",
			address:     "12Di4p7uTdR2A9rEoX5BnrL41yrj3gg7kn",
		},
	}

	for i, item := range tests {
		cs := mustColorSet(t, item.descriptors...)
		r, err := address.Derive(testSecret(), cs, item.index, item.testnet)
		if nil != err {
			t.Fatalf("%d: derive error: %s", i, err)
		}
		assert.Equal(t, item.privateKey, hex.EncodeToString(r.PrivateKey.Serialize()), "%d: private key", i)
		assert.Equal(t, item.address, r.Address, "%d: address", i)
		assert.Equal(t, item.index, r.Index, "%d: index", i)
		assert.Equal(t, item.testnet, r.Testnet, "%d: testnet", i)
		assert.False(t, r.Loose, "%d: loose", i)
		if "" != item.wif {
			assert.Equal(t, item.wif, r.ExportedKey(), "%d: wif", i)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cs := mustColorSet(t, colorA)

	r1, err := address.Derive(testSecret(), cs, 7, false)
	assert.Nil(t, err, "first derive")
	r2, err := address.Derive(testSecret(), cs, 7, false)
	assert.Nil(t, err, "second derive")

	assert.Equal(t, r1.PrivateKey.Serialize(), r2.PrivateKey.Serialize(), "private key")
	assert.Equal(t, r1.PublicKey.SerializeUncompressed(), r2.PublicKey.SerializeUncompressed(), "public key")
	assert.Equal(t, r1.Address, r2.Address, "address")
}

func TestDistinctness(t *testing.T) {
	secret := testSecret()
	scopes := []*colorset.ColorSet{
		colorset.Colorless(),
		mustColorSet(t, colorA),
		mustColorSet(t, colorset.Uncolored),
		mustColorSet(t, colorA, "epobc:beef:1:2"),
	}

	seen := map[string]string{}
	for s, cs := range scopes {
		for index := 0; index < 20; index += 1 {
			r, err := address.Derive(secret, cs, index, false)
			if nil != err {
				t.Fatalf("derive error: %s", err)
			}
			key := hex.EncodeToString(r.PrivateKey.Serialize())
			where := fmt.Sprintf("scope %d index %d", s, index)
			if previous, ok := seen[key]; ok {
				t.Fatalf("%s: same key as %s", where, previous)
			}
			seen[key] = where
		}
	}

	other := testSecret()
	other[0] ^= 0xff
	r1, _ := address.Derive(secret, colorset.Colorless(), 0, false)
	r2, _ := address.Derive(other, colorset.Colorless(), 0, false)
	assert.NotEqual(t, r1.Address, r2.Address, "different secrets")
}

func TestGenesisIsolation(t *testing.T) {
	assert.Equal(t, address.GenesisTag, address.ScopeTag(colorset.Colorless()), "colorless tag")

	descriptorLists := [][]string{
		{colorset.Uncolored},
		{colorA},
		{colorA, colorset.Uncolored},
		{"epobc:beef:1:2"},
		{"obc:0000000000000000000000000000000000000000000000000000000000000000:0:0"},
	}
	for i, d := range descriptorLists {
		cs := mustColorSet(t, d...)
		assert.NotEqual(t, address.GenesisTag, address.ScopeTag(cs), "%d: tag collides with genesis", i)
		assert.NotEqual(t, address.GenesisTag, cs.HashString(), "%d: hash collides with genesis", i)
	}
}

func TestDeriveInvalid(t *testing.T) {
	_, err := address.Derive(testSecret(), colorset.Colorless(), -1, false)
	assert.Equal(t, fault.ErrInvalidIndex, err, "negative index")

	_, err = address.Derive(address.MasterSecret{1, 2, 3}, colorset.Colorless(), 0, false)
	assert.Equal(t, fault.ErrInvalidMasterSecret, err, "short secret")
}

func TestIsGenesis(t *testing.T) {
	r, err := address.Derive(testSecret(), colorset.Colorless(), 0, false)
	assert.Nil(t, err, "genesis derive")
	assert.True(t, r.IsGenesis(), "colorless record")

	r, err = address.Derive(testSecret(), mustColorSet(t, colorA), 0, false)
	assert.Nil(t, err, "colored derive")
	assert.False(t, r.IsGenesis(), "colored record")
}
