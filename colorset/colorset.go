// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package colorset - sets of colored coin colors that scope wallet
// addresses
//
// A color set is created from a list of color definition descriptors.
// Each descriptor is resolved to a color id through a Map, so two sets
// are equal when they name the same colors, whatever the order or
// repetition of the descriptors.
package colorset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// Uncolored - descriptor of plain bitcoin, always color id zero
const Uncolored = ""

// Map - resolve a color descriptor to its color id
type Map interface {
	Resolve(descriptor string) (uint64, error)
}

// ColorSet - an immutable set of colors
type ColorSet struct {
	descriptors []string
	ids         map[uint64]struct{}
}

// New - create a color set from a descriptor list
//
// an empty list gives the colorless set used by genesis addresses
func New(m Map, descriptors []string) (*ColorSet, error) {

	canonical := canonicalise(descriptors)

	cs := &ColorSet{
		descriptors: canonical,
		ids:         make(map[uint64]struct{}, len(canonical)),
	}

	for _, d := range canonical {
		id, err := m.Resolve(d)
		if nil != err {
			return nil, err
		}
		cs.ids[id] = struct{}{}
	}
	return cs, nil
}

// Colorless - the empty color set
func Colorless() *ColorSet {
	return &ColorSet{
		descriptors: []string{},
		ids:         map[uint64]struct{}{},
	}
}

// sorted copy without duplicates
func canonicalise(descriptors []string) []string {
	seen := make(map[string]struct{}, len(descriptors))
	canonical := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		d = strings.TrimSpace(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		canonical = append(canonical, d)
	}
	sort.Strings(canonical)
	return canonical
}

// ColorSet - a color set is its own scope
func (cs *ColorSet) ColorSet() *ColorSet {
	return cs
}

// Data - the serialisable descriptor list
func (cs *ColorSet) Data() []string {
	d := make([]string, len(cs.descriptors))
	copy(d, cs.descriptors)
	return d
}

// IsColorless - true if the set has no colors at all
//
// note: the uncolored (plain bitcoin) color is a color, so a set
// containing only Uncolored is not colorless
func (cs *ColorSet) IsColorless() bool {
	return 0 == len(cs.descriptors)
}

// HashString - stable hex digest of the canonical descriptor list
func (cs *ColorSet) HashString() string {
	buffer, err := json.Marshal(cs.descriptors)
	if nil != err {
		// a string slice always marshals
		panic(err)
	}
	digest := sha256.Sum256(buffer)
	return hex.EncodeToString(digest[:])
}

// ColorIds - the ids of all colors in ascending order
func (cs *ColorSet) ColorIds() []uint64 {
	ids := make([]uint64, 0, len(cs.ids))
	for id := range cs.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Equals - true if both sets contain exactly the same colors
func (cs *ColorSet) Equals(other *ColorSet) bool {
	if nil == other || len(cs.ids) != len(other.ids) {
		return false
	}
	for id := range cs.ids {
		if _, ok := other.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Intersects - true if the sets share at least one color
func (cs *ColorSet) Intersects(other *ColorSet) bool {
	if nil == other {
		return false
	}
	small, large := cs.ids, other.ids
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}
	return false
}

// String - descriptors for logging
func (cs *ColorSet) String() string {
	return "[" + strings.Join(cs.descriptors, ", ") + "]"
}
