// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/bitmark-inc/ccwallet/chain"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
)

// GenesisTag - scope tag of colorless addresses
//
// a color set hash string is 64 hex digits, so it can never equal this
const GenesisTag = "genesis block"

// LooseIndex - index of every loose address
const LooseIndex = -1

// Record - a wallet address with its key material
type Record struct {
	ColorSet   *colorset.ColorSet
	Index      int
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	Address    string
	Testnet    bool
	Loose      bool

	// imported WIF of a loose address
	wif string
}

// ScopeTag - the derivation tag for a color set
func ScopeTag(cs *colorset.ColorSet) string {
	if cs.IsColorless() {
		return GenesisTag
	}
	return cs.HashString()
}

// Derive - the deterministic address for (secret, color set, index)
func Derive(secret MasterSecret, cs *colorset.ColorSet, index int, testnet bool) (*Record, error) {
	if index < 0 {
		return nil, fault.ErrInvalidIndex
	}
	if len(secret) < MasterSecretLength {
		return nil, fault.ErrInvalidMasterSecret
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ScopeTag(cs) + "|" + strconv.Itoa(index)))
	digest := mac.Sum(nil)

	var scalar btcec.ModNScalar
	scalar.SetByteSlice(digest) // reduces modulo N
	if scalar.IsZero() {
		return nil, fault.ErrInvalidScalar
	}
	keyBytes := scalar.Bytes()
	privateKey, publicKey := btcec.PrivKeyFromBytes(keyBytes[:])

	addr, err := encode(publicKey.SerializeUncompressed(), testnet)
	if nil != err {
		return nil, err
	}

	r := &Record{
		ColorSet:   cs,
		Index:      index,
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Address:    addr,
		Testnet:    testnet,
	}
	return r, nil
}

// pay to public key hash address string
func encode(serialisedPublicKey []byte, testnet bool) (string, error) {
	a, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(serialisedPublicKey), chain.Params(testnet))
	if nil != err {
		return "", err
	}
	return a.EncodeAddress(), nil
}

// ExportedKey - the private key in wallet import format
func (r *Record) ExportedKey() string {
	if r.Loose {
		return r.wif
	}
	wif, err := btcutil.NewWIF(r.PrivateKey, chain.Params(r.Testnet), false)
	if nil != err {
		// only fails for a nil network
		panic(err)
	}
	return wif.String()
}

// IsGenesis - true for a deterministic address that is still colorless
func (r *Record) IsGenesis() bool {
	return !r.Loose && r.ColorSet.IsColorless()
}

// String - address with its scope for logging
func (r *Record) String() string {
	if r.Loose {
		return fmt.Sprintf("%s loose %s", r.Address, r.ColorSet)
	}
	return fmt.Sprintf("%s %s/%d", r.Address, r.ColorSet, r.Index)
}
