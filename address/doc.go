// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic wallet address derivation
//
// Every wallet address is derived from a single master secret, the
// scope (color set) it belongs to and its index within that scope:
//
//	tag    = "genesis block"            if the color set is colorless
//	       = color set hash string      otherwise
//	digest = HMAC-SHA256(key: master secret, message: tag ++ "|" ++ decimal(index))
//	scalar = digest as big endian integer, reduced modulo the curve order
//	public = scalar · G on secp256k1
//	address = base58check(version ++ HASH160(uncompressed public key))
//
// Reducing the scalar does not change the public key since k·G and
// (k mod N)·G are the same point.  A scalar that reduces to zero has no
// public key and is rejected.
//
// Loose addresses are imported WIF keys that live outside this scheme.
package address
