// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colorset

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/ccwallet/fault"
)

// color kernel styles that may appear in a descriptor
var validStyles = map[string]struct{}{
	"obc":   {},
	"epobc": {},
}

// ValidateDescriptor - check the shape of a color descriptor
//
// format: style:genesis-txid:output-index:height
// the empty string denotes uncolored bitcoin
func ValidateDescriptor(descriptor string) error {
	if Uncolored == descriptor {
		return nil
	}

	parts := strings.Split(descriptor, ":")
	if 4 != len(parts) {
		return fault.ErrInvalidColorDescriptor
	}
	if _, ok := validStyles[parts[0]]; !ok {
		return fault.ErrInvalidColorDescriptor
	}
	if "" == parts[1] {
		return fault.ErrInvalidColorDescriptor
	}
	if _, err := chainhash.NewHashFromStr(parts[1]); nil != err {
		return fault.ErrInvalidColorDescriptor
	}
	if _, err := strconv.ParseUint(parts[2], 10, 32); nil != err {
		return fault.ErrInvalidColorDescriptor
	}
	if _, err := strconv.ParseUint(parts[3], 10, 32); nil != err {
		return fault.ErrInvalidColorDescriptor
	}
	return nil
}
