// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
)

// write a command result as indented JSON
//
// descriptors and keys are printed verbatim, so no HTML escaping
func printJson(handle io.Writer, message interface{}) error {
	enc := json.NewEncoder(handle)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(message)
}
