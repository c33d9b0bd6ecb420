// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr_test

import (
	"encoding/hex"
	"os"
	"sync"
	"testing"

	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"

	colorA = "obc:cafe:0:0"
	colorB = "epobc:beef:1:310000"
	colorC = "obc:0123456789abcdef:2:100"
)

// in-memory configuration store
type memoryStore struct {
	sync.Mutex
	data map[string][]byte
	puts int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (s *memoryStore) Get(key []byte) []byte {
	s.Lock()
	defer s.Unlock()
	value, ok := s.data[string(key)]
	if !ok {
		return nil
	}
	return append([]byte{}, value...)
}

func (s *memoryStore) Put(key []byte, value []byte) {
	s.Lock()
	defer s.Unlock()
	s.data[string(key)] = append([]byte{}, value...)
	s.puts += 1
}

// in-memory color map
type memoryMap struct {
	sync.Mutex
	ids map[string]uint64
}

func newMemoryMap() *memoryMap {
	return &memoryMap{ids: map[string]uint64{}}
}

func (m *memoryMap) Resolve(descriptor string) (uint64, error) {
	if colorset.Uncolored == descriptor {
		return 0, nil
	}
	if err := colorset.ValidateDescriptor(descriptor); nil != err {
		return 0, err
	}
	m.Lock()
	defer m.Unlock()
	id, ok := m.ids[descriptor]
	if !ok {
		id = uint64(len(m.ids) + 1)
		m.ids[descriptor] = id
	}
	return id, nil
}

// store pre-loaded with the master secret 0x00..0x3f
func fixedSecretStore() *memoryStore {
	secret := make([]byte, 64)
	for i := range secret {
		secret[i] = byte(i)
	}
	s := newMemoryStore()
	s.Put([]byte("master_key"), []byte(hex.EncodeToString(secret)))
	return s
}

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}
