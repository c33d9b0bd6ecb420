// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationConflict       = ExistsError("address index already allocated")
	ErrAlreadyInitialised       = InvalidError("already initialised")
	ErrAlreadyStarted           = InvalidError("already started")
	ErrBackendDisconnected      = ProcessError("backend disconnected")
	ErrBackendRequestFailed     = ProcessError("backend request failed")
	ErrEngineStopped            = InvalidError("engine stopped")
	ErrInvalidAddressState      = InvalidError("invalid address state")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidColorDescriptor   = InvalidError("invalid color descriptor")
	ErrInvalidDataDirectory     = InvalidError("invalid data directory")
	ErrInvalidGenesisIndex      = InvalidError("invalid genesis index")
	ErrInvalidIndex             = InvalidError("invalid address index")
	ErrInvalidLooseAddress      = InvalidError("invalid loose address")
	ErrInvalidMasterSecret      = InvalidError("invalid master secret")
	ErrInvalidScalar            = InvalidError("derived scalar is out of range")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrNetworkMismatch          = InvalidError("wallet network does not match configuration")
	ErrNotRunning               = InvalidError("not running")
	ErrUnknownBackend           = InvalidError("unknown backend")
	ErrUnknownColorDescriptor   = NotFoundError("unknown color descriptor")
	ErrUnexpectedBackendReply   = ProcessError("unexpected backend reply")
	ErrWalletAddressNotFound    = NotFoundError("wallet address not found")
	ErrWalletAddressNotGenesis  = InvalidError("wallet address is not a genesis address")
	ErrWalletDatabaseIncomplete = ProcessError("wallet database incomplete")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
