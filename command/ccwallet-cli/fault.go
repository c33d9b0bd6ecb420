// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ccwallet/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAddress = fault.InvalidError("missing address")
	ErrMissingColor   = fault.InvalidError("missing color descriptor")
	ErrMissingKey     = fault.InvalidError("missing private key")
	ErrSelectOne      = fault.InvalidError("select exactly one of address or key")
)
