// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/ccwallet/fault"
)

// MasterSecretLength - number of random bytes in a new master secret
const MasterSecretLength = 64

// MasterSecret - root of all deterministic wallet keys
type MasterSecret []byte

// NewMasterSecret - generate a fresh random master secret
func NewMasterSecret() (MasterSecret, error) {
	secret := make([]byte, MasterSecretLength)
	n, err := rand.Read(secret)
	if nil != err {
		return nil, err
	}
	if MasterSecretLength != n {
		return nil, fault.ErrInvalidMasterSecret
	}
	return secret, nil
}

// ParseMasterSecret - decode the stored hex form
func ParseMasterSecret(s string) (MasterSecret, error) {
	secret, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidMasterSecret
	}
	if len(secret) < MasterSecretLength {
		return nil, fault.ErrInvalidMasterSecret
	}
	return secret, nil
}

// MarshalText - hex form for storage
func (s MasterSecret) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(s)))
	hex.Encode(buffer, s)
	return buffer, nil
}

// String - never show the secret in logs
func (s MasterSecret) String() string {
	return "<secret>"
}
