// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import (
	"github.com/bitmark-inc/ccwallet/fault"
)

// ColorSetState - allocation counter of one color set
type ColorSetState struct {
	ColorSet []string `json:"color_set"`
	MaxIndex int      `json:"max_index"`
}

// State - the persisted allocation state
//
// GenesisColorSets[i] is the color set bound to genesis index i, empty
// until an asset is issued to it
type State struct {
	GenesisColorSets [][]string      `json:"genesis_color_sets"`
	ColorSetStates   []ColorSetState `json:"color_set_states"`
}

func (s *State) validate() error {
	if nil == s.GenesisColorSets {
		s.GenesisColorSets = [][]string{}
	}
	if nil == s.ColorSetStates {
		s.ColorSetStates = []ColorSetState{}
	}
	for _, st := range s.ColorSetStates {
		if st.MaxIndex < 0 {
			return fault.ErrInvalidAddressState
		}
	}
	return nil
}

func (s State) clone() State {
	c := State{
		GenesisColorSets: make([][]string, len(s.GenesisColorSets)),
		ColorSetStates:   make([]ColorSetState, len(s.ColorSetStates)),
	}
	for i, g := range s.GenesisColorSets {
		c.GenesisColorSets[i] = append([]string{}, g...)
	}
	for i, st := range s.ColorSetStates {
		c.ColorSetStates[i] = ColorSetState{
			ColorSet: append([]string{}, st.ColorSet...),
			MaxIndex: st.MaxIndex,
		}
	}
	return c
}
