// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colorset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
)

const (
	colorA = "obc:cafe:0:0"
	colorB = "epobc:beef:1:310000"
	colorC = "obc:0123456789abcdef:2:100"
)

func mustNew(t *testing.T, m colorset.Map, descriptors ...string) *colorset.ColorSet {
	cs, err := colorset.New(m, descriptors)
	if nil != err {
		t.Fatalf("new color set: %v  error: %s", descriptors, err)
	}
	return cs
}

func TestColorless(t *testing.T) {
	m := newMemoryMap()

	empty := mustNew(t, m)
	assert.True(t, empty.IsColorless(), "empty set")
	assert.True(t, colorset.Colorless().IsColorless(), "Colorless()")
	assert.True(t, empty.Equals(colorset.Colorless()), "empty equals Colorless()")

	uncolored := mustNew(t, m, colorset.Uncolored)
	assert.False(t, uncolored.IsColorless(), "uncolored bitcoin is a color")
	assert.Equal(t, []uint64{0}, uncolored.ColorIds(), "uncolored id")
}

func TestHashString(t *testing.T) {
	m := newMemoryMap()

	tests := []struct {
		descriptors []string
		hash        string
	}{
		{[]string{colorA}, "0fb37d7fb9b196f4a0d7dc37a5bf0d7e5df03f33945c921a7ab0c9c01ace5ef1"},
		{[]string{colorA, colorA}, "0fb37d7fb9b196f4a0d7dc37a5bf0d7e5df03f33945c921a7ab0c9c01ace5ef1"},
		{[]string{colorset.Uncolored}, "055539df4a0b804c58caf46c0cd2941af10d64c1395ddd8e50b5f55d945841e6"},
	}

	for i, item := range tests {
		cs := mustNew(t, m, item.descriptors...)
		assert.Equal(t, item.hash, cs.HashString(), "%d: hash", i)
	}
}

// descriptor order and repetition do not change identity
func TestEquals(t *testing.T) {
	m := newMemoryMap()

	ab := mustNew(t, m, colorA, colorB)
	ba := mustNew(t, m, colorB, colorA, colorB)
	a := mustNew(t, m, colorA)

	assert.True(t, ab.Equals(ba), "same colors, different order")
	assert.Equal(t, ab.HashString(), ba.HashString(), "same colors, same hash")
	assert.Equal(t, ab.Data(), ba.Data(), "canonical data")
	assert.False(t, ab.Equals(a), "subset is not equal")
	assert.False(t, a.Equals(nil), "nil")
	assert.NotEqual(t, ab.HashString(), a.HashString(), "different colors, different hash")
}

func TestIntersects(t *testing.T) {
	m := newMemoryMap()

	ab := mustNew(t, m, colorA, colorB)
	bc := mustNew(t, m, colorB, colorC)
	c := mustNew(t, m, colorC)
	empty := mustNew(t, m)

	assert.True(t, ab.Intersects(bc), "share colorB")
	assert.True(t, bc.Intersects(ab), "symmetric")
	assert.True(t, bc.Intersects(c), "superset")
	assert.False(t, ab.Intersects(c), "disjoint")
	assert.False(t, ab.Intersects(empty), "empty never intersects")
	assert.False(t, empty.Intersects(empty), "empty with itself")
}

func TestDataIsCopy(t *testing.T) {
	m := newMemoryMap()

	cs := mustNew(t, m, colorA)
	d := cs.Data()
	d[0] = "changed"
	assert.Equal(t, []string{colorA}, cs.Data(), "internal descriptors modified")
}

func TestValidateDescriptor(t *testing.T) {
	tests := []struct {
		descriptor string
		valid      bool
	}{
		{colorset.Uncolored, true},
		{colorA, true},
		{colorB, true},
		{"obc:cafe:0", false},
		{"xyz:cafe:0:0", false},
		{"obc::0:0", false},
		{"obc:nothex:0:0", false},
		{"obc:cafe:-1:0", false},
		{"obc:cafe:0:height", false},
	}

	for i, item := range tests {
		err := colorset.ValidateDescriptor(item.descriptor)
		if item.valid {
			assert.Nil(t, err, "%d: %q", i, item.descriptor)
		} else {
			assert.Equal(t, fault.ErrInvalidColorDescriptor, err, "%d: %q", i, item.descriptor)
		}
	}

	_, err := colorset.New(newMemoryMap(), []string{"bad"})
	assert.Equal(t, fault.ErrInvalidColorDescriptor, err, "New with invalid descriptor")
}
