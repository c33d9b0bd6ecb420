// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/bitmark-inc/ccwallet/address"
	"github.com/bitmark-inc/ccwallet/colorset"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/lightningnetwork/lnd/multimutex"
)

// keys in the configuration store
var (
	masterKeyKey = []byte("master_key")
	stateKey     = []byte("address_state")
	looseKey     = []byte("loose_addresses")
	testnetKey   = []byte("testnet")
)

// ConfigStore - the wallet key/value configuration store
//
// satisfied by *storage.PoolHandle; write failures panic there, so Put
// has no error return
type ConfigStore interface {
	Get(key []byte) []byte
	Put(key []byte, value []byte)
}

// Scoped - anything that names a color set, e.g. a color set itself or
// an asset definition
type Scoped interface {
	ColorSet() *colorset.ColorSet
}

// Manager - the address space of one wallet
type Manager struct {
	sync.RWMutex

	log      *logger.L
	colorMap colorset.Map
	store    ConfigStore
	testnet  bool
	secret   address.MasterSecret

	// persisted allocation state; counterSets[i] is the resolved
	// form of state.ColorSetStates[i]
	state       State
	counterSets []*colorset.ColorSet

	// materialised address space
	addresses map[string]*address.Record
	order     []*address.Record

	// serialise allocation per color set hash
	allocation *multimutex.HashMutex

	derive deriveFunc
}

// New - load the wallet address space, creating a new master secret and
// empty allocation state on first use
func New(colorMap colorset.Map, store ConfigStore, testnet bool) (*Manager, error) {
	return newManager(colorMap, store, testnet, address.Derive)
}

type deriveFunc func(address.MasterSecret, *colorset.ColorSet, int, bool) (*address.Record, error)

func newManager(colorMap colorset.Map, store ConfigStore, testnet bool, derive deriveFunc) (*Manager, error) {

	m := &Manager{
		log:        logger.New("addrmgr"),
		colorMap:   colorMap,
		store:      store,
		testnet:    testnet,
		addresses:  make(map[string]*address.Record),
		allocation: multimutex.NewHashMutex(),
		derive:     derive,
	}

	if err := m.checkNetwork(); nil != err {
		return nil, err
	}

	secret, err := m.loadSecret()
	if nil != err {
		return nil, err
	}
	m.secret = secret

	if err := m.loadState(); nil != err {
		return nil, err
	}

	if err := m.materialise(); nil != err {
		return nil, err
	}

	m.log.Infof("address space: %d addresses  genesis: %d  color sets: %d  testnet: %t",
		len(m.order), len(m.state.GenesisColorSets), len(m.state.ColorSetStates), testnet)

	return m, nil
}

// the stored network flag must match the requested one
func (m *Manager) checkNetwork() error {
	flag := strconv.FormatBool(m.testnet)
	stored := m.store.Get(testnetKey)
	if nil == stored {
		m.store.Put(testnetKey, []byte(flag))
		return nil
	}
	if flag != string(stored) {
		m.log.Errorf("stored testnet: %s  requested testnet: %s", stored, flag)
		return fault.ErrNetworkMismatch
	}
	return nil
}

// master secret is stored on its own and written exactly once
func (m *Manager) loadSecret() (address.MasterSecret, error) {
	stored := m.store.Get(masterKeyKey)
	if nil != stored {
		return address.ParseMasterSecret(string(stored))
	}

	m.log.Info("generating new master secret")

	secret, err := address.NewMasterSecret()
	if nil != err {
		return nil, err
	}
	text, err := secret.MarshalText()
	if nil != err {
		return nil, err
	}
	m.store.Put(masterKeyKey, text)
	return secret, nil
}

func (m *Manager) loadState() error {
	stored := m.store.Get(stateKey)
	if nil == stored {
		m.state = State{
			GenesisColorSets: [][]string{},
			ColorSetStates:   []ColorSetState{},
		}
		return m.persist()
	}

	err := json.Unmarshal(stored, &m.state)
	if nil != err {
		m.log.Errorf("address state decode error: %s", err)
		return fault.ErrInvalidAddressState
	}
	return m.state.validate()
}

// rebuild every address from the persisted state
func (m *Manager) materialise() error {

	for i, descriptors := range m.state.GenesisColorSets {
		cs, err := colorset.New(m.colorMap, descriptors)
		if nil != err {
			return err
		}
		r, err := m.GenesisAddress(i)
		if fault.ErrInvalidScalar == err {
			m.log.Warnf("skip unusable genesis index: %d", i)
			continue
		} else if nil != err {
			return err
		}
		r.ColorSet = cs
		if err := m.add(r); nil != err {
			return err
		}
	}

	m.counterSets = make([]*colorset.ColorSet, len(m.state.ColorSetStates))
	for i, st := range m.state.ColorSetStates {
		cs, err := colorset.New(m.colorMap, st.ColorSet)
		if nil != err {
			return err
		}
		m.counterSets[i] = cs

		for index := 0; index <= st.MaxIndex; index += 1 {
			r, err := m.derive(m.secret, cs, index, m.testnet)
			if fault.ErrInvalidScalar == err {
				m.log.Warnf("skip unusable index: %s/%d", cs, index)
				continue
			} else if nil != err {
				return err
			}
			if err := m.add(r); nil != err {
				return err
			}
		}
	}

	for _, desc := range m.looseDescriptors() {
		if _, err := m.ImportLooseAddress(desc); nil != err {
			m.log.Warnf("skip loose address: color set: %v  error: %s", desc.ColorSet, err)
		}
	}

	return nil
}

func (m *Manager) looseDescriptors() []address.LooseDescriptor {
	stored := m.store.Get(looseKey)
	if nil == stored {
		return nil
	}
	descriptors := []address.LooseDescriptor{}
	if err := json.Unmarshal(stored, &descriptors); nil != err {
		m.log.Errorf("loose address decode error: %s", err)
		return nil
	}
	return descriptors
}

// write through the allocation state
//
// caller must hold the write lock or be the constructor
func (m *Manager) persist() error {
	buffer, err := json.Marshal(m.state)
	if nil != err {
		return err
	}
	m.store.Put(stateKey, buffer)
	return nil
}

// add a record to the address space
//
// caller must hold the write lock or be the constructor
func (m *Manager) add(r *address.Record) error {
	if _, ok := m.addresses[r.Address]; ok {
		m.log.Errorf("address: %s already in address space", r.Address)
		return fault.ErrAllocationConflict
	}
	m.addresses[r.Address] = r
	m.order = append(m.order, r)
	return nil
}

// Testnet - network of every address in this space
func (m *Manager) Testnet() bool {
	return m.testnet
}

// State - copy of the persisted allocation state
func (m *Manager) State() State {
	m.RLock()
	defer m.RUnlock()
	return m.state.clone()
}

// NewAddress - allocate the next address of a color set
//
// colorless addresses come only from the genesis registry; an index
// whose scalar is unusable is skipped
func (m *Manager) NewAddress(scoped Scoped) (*address.Record, error) {
	cs := scoped.ColorSet()
	if cs.IsColorless() {
		return nil, fault.ErrInvalidColorDescriptor
	}
	hash, err := lntypes.MakeHashFromStr(cs.HashString())
	if nil != err {
		return nil, err
	}

	m.allocation.Lock(hash)
	defer m.allocation.Unlock(hash)

	index := m.nextIndex(cs)
	r, err := m.derive(m.secret, cs, index, m.testnet)
	for fault.ErrInvalidScalar == err {
		m.log.Warnf("skip unusable index: %s/%d", cs, index)
		index += 1
		r, err = m.derive(m.secret, cs, index, m.testnet)
	}
	if nil != err {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()

	if err := m.commitIndex(cs, index); nil != err {
		return nil, err
	}
	if err := m.add(r); nil != err {
		return nil, err
	}

	m.log.Infof("new address: %s", r)
	return r, nil
}

// the index following the persisted maximum of a color set
//
// caller must hold the allocation lock of the color set
func (m *Manager) nextIndex(cs *colorset.ColorSet) int {
	m.RLock()
	defer m.RUnlock()

	for i, known := range m.counterSets {
		if known.Equals(cs) {
			return m.state.ColorSetStates[i].MaxIndex + 1
		}
	}
	return 0
}

// persist index as the maximum of a color set, creating its counter
// on the first allocation
//
// caller must hold the write lock
func (m *Manager) commitIndex(cs *colorset.ColorSet, index int) error {
	for i, known := range m.counterSets {
		if known.Equals(cs) {
			previous := m.state.ColorSetStates[i].MaxIndex
			m.state.ColorSetStates[i].MaxIndex = index
			if err := m.persist(); nil != err {
				m.state.ColorSetStates[i].MaxIndex = previous
				return err
			}
			return nil
		}
	}

	m.state.ColorSetStates = append(m.state.ColorSetStates, ColorSetState{
		ColorSet: cs.Data(),
		MaxIndex: index,
	})
	m.counterSets = append(m.counterSets, cs)
	if err := m.persist(); nil != err {
		n := len(m.state.ColorSetStates) - 1
		m.state.ColorSetStates = m.state.ColorSetStates[:n]
		m.counterSets = m.counterSets[:n]
		return err
	}
	return nil
}

// GenesisAddress - derive the colorless address at a genesis index
//
// this does not change the address space
func (m *Manager) GenesisAddress(genesisIndex int) (*address.Record, error) {
	if genesisIndex < 0 {
		return nil, fault.ErrInvalidGenesisIndex
	}
	return m.derive(m.secret, colorset.Colorless(), genesisIndex, m.testnet)
}

// NewGenesisAddress - register and materialise the next genesis address
//
// the address is derived before the registry is persisted; an index
// whose scalar is unusable keeps its empty registry slot and is skipped
func (m *Manager) NewGenesisAddress() (*address.Record, error) {
	m.Lock()
	defer m.Unlock()

	start := len(m.state.GenesisColorSets)
	index := start
	r, err := m.GenesisAddress(index)
	for fault.ErrInvalidScalar == err {
		m.log.Warnf("skip unusable genesis index: %d", index)
		index += 1
		r, err = m.GenesisAddress(index)
	}
	if nil != err {
		return nil, err
	}

	for i := start; i <= index; i += 1 {
		m.state.GenesisColorSets = append(m.state.GenesisColorSets, []string{})
	}
	if err := m.persist(); nil != err {
		m.state.GenesisColorSets = m.state.GenesisColorSets[:start]
		return nil, err
	}

	if err := m.add(r); nil != err {
		return nil, err
	}

	m.log.Infof("new genesis address: %s", r)
	return r, nil
}

// BindGenesisColor - attach the color set of a newly issued asset to a
// colorless genesis address
//
// binding an address that already has colors is a programming error
// and panics
func (m *Manager) BindGenesisColor(r *address.Record, scoped Scoped) error {
	cs := scoped.ColorSet()

	m.Lock()
	defer m.Unlock()

	if !r.IsGenesis() {
		logger.Panicf("addrmgr: bind color: %s to non-genesis address: %s", cs, r)
	}

	existing, ok := m.addresses[r.Address]
	if !ok || existing != r {
		return fault.ErrWalletAddressNotFound
	}
	if r.Index >= len(m.state.GenesisColorSets) {
		return fault.ErrWalletAddressNotGenesis
	}

	previous := m.state.GenesisColorSets[r.Index]
	m.state.GenesisColorSets[r.Index] = cs.Data()
	if err := m.persist(); nil != err {
		m.state.GenesisColorSets[r.Index] = previous
		return err
	}
	r.ColorSet = cs

	m.log.Infof("bound genesis address: %s", r)
	return nil
}

// FindByExportedKey - first address whose exported key matches
func (m *Manager) FindByExportedKey(key string) *address.Record {
	m.RLock()
	defer m.RUnlock()

	for _, r := range m.order {
		if key == r.ExportedKey() {
			return r
		}
	}
	return nil
}

// FindByAddress - the record of an address string
func (m *Manager) FindByAddress(addr string) *address.Record {
	m.RLock()
	defer m.RUnlock()

	return m.addresses[addr]
}

// AddressesFor - every address whose color set shares at least one
// color with the query
func (m *Manager) AddressesFor(scoped Scoped) []*address.Record {
	cs := scoped.ColorSet()

	m.RLock()
	defer m.RUnlock()

	result := []*address.Record{}
	for _, r := range m.order {
		if cs.Intersects(r.ColorSet) {
			result = append(result, r)
		}
	}
	return result
}

// SomeAddress - the first existing address for a color set, or a new
// one if there is none
func (m *Manager) SomeAddress(scoped Scoped) (*address.Record, error) {
	existing := m.AddressesFor(scoped)
	if len(existing) > 0 {
		return existing[0], nil
	}
	return m.NewAddress(scoped)
}

// ChangeAddress - address to receive change in a color set
func (m *Manager) ChangeAddress(scoped Scoped) (*address.Record, error) {
	return m.SomeAddress(scoped)
}

// ImportLooseAddress - add an externally supplied key to the address
// space for this session
//
// importing a key that is already present returns the existing record
func (m *Manager) ImportLooseAddress(desc address.LooseDescriptor) (*address.Record, error) {
	cs, err := colorset.New(m.colorMap, desc.ColorSet)
	if nil != err {
		return nil, err
	}
	r, err := address.NewLoose(desc.AddressData, cs, m.testnet)
	if nil != err {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()

	if existing, ok := m.addresses[r.Address]; ok {
		return existing, nil
	}
	if err := m.add(r); nil != err {
		return nil, err
	}
	return r, nil
}

// AddLooseAddress - import a key and record it so it is imported again
// on every load
func (m *Manager) AddLooseAddress(desc address.LooseDescriptor) (*address.Record, error) {
	r, err := m.ImportLooseAddress(desc)
	if nil != err {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()

	descriptors := m.looseDescriptors()
	for _, d := range descriptors {
		if d.AddressData == desc.AddressData {
			return r, nil
		}
	}
	descriptors = append(descriptors, desc)
	buffer, err := json.Marshal(descriptors)
	if nil != err {
		return nil, err
	}
	m.store.Put(looseKey, buffer)

	return r, nil
}

// AllAddresses - snapshot of the address space in creation order
func (m *Manager) AllAddresses() []*address.Record {
	m.RLock()
	defer m.RUnlock()

	result := make([]*address.Record, len(m.order))
	copy(result, m.order)
	return result
}

// AddressStrings - snapshot of every address string in creation order
func (m *Manager) AddressStrings() []string {
	m.RLock()
	defer m.RUnlock()

	result := make([]string, len(m.order))
	for i, r := range m.order {
		result[i] = r.Address
	}
	return result
}

// String - summary for logging
func (m *Manager) String() string {
	m.RLock()
	defer m.RUnlock()
	return fmt.Sprintf("addresses: %d  genesis: %d  color sets: %d",
		len(m.order), len(m.state.GenesisColorSets), len(m.state.ColorSetStates))
}
