// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package colorset

import (
	"sync"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

// key of the next id to allocate in the count pool
var nextIdKey = []byte("next")

// first id handed out to a colored descriptor; zero is Uncolored
const firstColorId = 1

// Handle - the subset of a storage pool used for color ids
type Handle interface {
	GetN(key []byte) (uint64, bool)
	PutN(key []byte, value uint64)
}

// StoreMap - persistent descriptor to color id map
//
// ids are allocated sequentially on first sight of a descriptor and
// never change afterwards
type StoreMap struct {
	sync.Mutex

	log   *logger.L
	ids   Handle
	count Handle
}

// NewStoreMap - create a color map over the id and counter pools
func NewStoreMap(ids Handle, count Handle) *StoreMap {
	return &StoreMap{
		log:   logger.New("colorset"),
		ids:   ids,
		count: count,
	}
}

// Resolve - color id for a descriptor, allocating a new id if needed
func (m *StoreMap) Resolve(descriptor string) (uint64, error) {
	if Uncolored == descriptor {
		return 0, nil
	}

	if err := ValidateDescriptor(descriptor); nil != err {
		return 0, err
	}

	m.Lock()
	defer m.Unlock()

	key := []byte(descriptor)
	if id, found := m.ids.GetN(key); found {
		return id, nil
	}

	id, found := m.count.GetN(nextIdKey)
	if !found {
		id = firstColorId
	}

	// counter first so a crash cannot hand the same id out twice
	m.count.PutN(nextIdKey, id+1)
	m.ids.PutN(key, id)

	m.log.Infof("new color id: %d  descriptor: %q", id, descriptor)

	return id, nil
}

// Find - color id of a known descriptor without allocating
func (m *StoreMap) Find(descriptor string) (uint64, bool) {
	if Uncolored == descriptor {
		return 0, true
	}

	m.Lock()
	defer m.Unlock()

	return m.ids.GetN([]byte(descriptor))
}

// Known - a view of the map that resolves only descriptors already
// allocated an id
func (m *StoreMap) Known() Map {
	return knownMap{m: m}
}

type knownMap struct {
	m *StoreMap
}

func (k knownMap) Resolve(descriptor string) (uint64, error) {
	if err := ValidateDescriptor(descriptor); nil != err {
		return 0, err
	}
	id, found := k.m.Find(descriptor)
	if !found {
		return 0, fault.ErrUnknownColorDescriptor
	}
	return id, nil
}
