// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
)

// trim and check an address argument
func checkAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if "" == addr {
		return "", ErrMissingAddress
	}
	return addr, nil
}

// require at least one non blank color descriptor
func checkColors(colors []string) ([]string, error) {
	result := make([]string, 0, len(colors))
	for _, c := range colors {
		if c = strings.TrimSpace(c); "" != c {
			result = append(result, c)
		}
	}
	if 0 == len(result) {
		return nil, ErrMissingColor
	}
	return result, nil
}
