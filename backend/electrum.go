// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"

	"github.com/bitmark-inc/ccwallet/chain"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

// default public electrum server
const (
	DefaultElectrumServer = "btc.it-zone.org"
	DefaultElectrumPort   = 50001

	electrumDialTimeout    = 10 * time.Second
	electrumRequestTimeout = 30 * time.Second
	electrumMaximumLine    = 16 * 1024 * 1024

	listUnspentMethod = "blockchain.scripthash.listunspent"
)

type electrumRequest struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type electrumError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type electrumReply struct {
	Id     *uint64         `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *electrumError  `json:"error"`
}

type electrumUnspent struct {
	TxHash string `json:"tx_hash"`
	TxPos  uint32 `json:"tx_pos"`
	Height int64  `json:"height"`
	Value  int64  `json:"value"`
}

// one connection, one request at a time
type electrum struct {
	sync.Mutex // conn and closed

	log     *logger.L
	address string
	conn    net.Conn
	closed  bool

	// held for a whole request
	callMutex sync.Mutex
	reader    *bufio.Reader
	nextId    uint64
}

func newElectrum(log *logger.L, conf ElectrumConfiguration) *electrum {
	server := conf.Server
	if "" == server {
		server = DefaultElectrumServer
	}
	port := conf.Port
	if 0 == port {
		port = DefaultElectrumPort
	}
	return &electrum{
		log:     log,
		address: net.JoinHostPort(server, strconv.Itoa(port)),
	}
}

// ScriptHash - electrum script hash of an address
//
// the reversed SHA-256 of the output script as hex
func ScriptHash(address string, testnet bool) (string, error) {
	addr, err := btcutil.DecodeAddress(address, chain.Params(testnet))
	if nil != err {
		return "", err
	}
	script, err := txscript.PayToAddrScript(addr)
	if nil != err {
		return "", err
	}
	digest := sha256.Sum256(script)
	for i, j := 0, len(digest)-1; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	return hex.EncodeToString(digest[:]), nil
}

// TransactionIds - blockchain.scripthash.listunspent
func (e *electrum) TransactionIds(ctx context.Context, address string) ([]string, error) {
	scriptHash, err := ScriptHash(address, false)
	if nil != err {
		e.log.Warnf("address: %s  script hash error: %s", address, err)
		return nil, err
	}

	var unspent []electrumUnspent
	if err := e.call(ctx, listUnspentMethod, []interface{}{scriptHash}, &unspent); nil != err {
		return nil, err
	}

	ids := make([]string, 0, len(unspent))
	seen := make(map[string]struct{}, len(unspent))
	for _, u := range unspent {
		hash, err := chainhash.NewHashFromStr(u.TxHash)
		if nil != err {
			e.log.Warnf("address: %s  bad txid: %q", address, u.TxHash)
			return nil, fault.ErrUnexpectedBackendReply
		}
		ids = appendUnique(ids, seen, hash.String())
	}
	return ids, nil
}

// Disconnect - close the connection and refuse new requests
//
// a request in progress fails with fault.ErrBackendDisconnected
func (e *electrum) Disconnect() {
	e.Lock()
	defer e.Unlock()

	e.closed = true
	if nil != e.conn {
		e.conn.Close()
		e.conn = nil
	}
}

// send one request and wait for the reply with the same id
func (e *electrum) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	e.callMutex.Lock()
	defer e.callMutex.Unlock()

	conn, err := e.connection(ctx)
	if nil != err {
		return err
	}

	deadline := time.Now().Add(electrumRequestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetDeadline(deadline)

	// unblock the read if the context ends first
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.SetDeadline(time.Unix(1, 0))
		case <-done:
		}
	}()

	e.nextId += 1
	id := e.nextId
	request, err := json.Marshal(electrumRequest{Id: id, Method: method, Params: params})
	if nil != err {
		return err
	}

	if _, err := conn.Write(append(request, '\n')); nil != err {
		return e.failure(ctx, conn, err)
	}

	for {
		line, err := e.readLine()
		if nil != err {
			return e.failure(ctx, conn, err)
		}

		var reply electrumReply
		if err := json.Unmarshal(line, &reply); nil != err {
			e.drop(conn)
			return fmt.Errorf("%w: %s", fault.ErrUnexpectedBackendReply, err)
		}

		// skip subscription notifications and stale replies
		if nil == reply.Id || id != *reply.Id {
			continue
		}

		if nil != reply.Error {
			return fmt.Errorf("%w: %s: %d %s", fault.ErrBackendRequestFailed, method, reply.Error.Code, reply.Error.Message)
		}
		if err := json.Unmarshal(reply.Result, result); nil != err {
			return fmt.Errorf("%w: %s", fault.ErrUnexpectedBackendReply, err)
		}
		return nil
	}
}

func (e *electrum) readLine() ([]byte, error) {
	line := []byte{}
	for {
		chunk, isPrefix, err := e.reader.ReadLine()
		if nil != err {
			return nil, err
		}
		line = append(line, chunk...)
		if len(line) > electrumMaximumLine {
			return nil, fault.ErrUnexpectedBackendReply
		}
		if !isPrefix {
			return line, nil
		}
	}
}

// the open connection, dialling if there is none
//
// caller must hold callMutex
func (e *electrum) connection(ctx context.Context) (net.Conn, error) {
	e.Lock()
	closed, conn := e.closed, e.conn
	e.Unlock()

	if closed {
		return nil, fault.ErrBackendDisconnected
	}
	if nil != conn {
		return conn, nil
	}

	dialer := net.Dialer{Timeout: electrumDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", e.address)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrBackendRequestFailed, err)
	}

	e.Lock()
	defer e.Unlock()
	if e.closed {
		conn.Close()
		return nil, fault.ErrBackendDisconnected
	}
	e.log.Infof("connected to: %s", e.address)
	e.conn = conn
	e.reader = bufio.NewReaderSize(conn, 65536)
	return conn, nil
}

// close a broken connection so the next call reconnects
func (e *electrum) drop(conn net.Conn) {
	e.Lock()
	defer e.Unlock()
	conn.Close()
	if conn == e.conn {
		e.conn = nil
	}
}

func (e *electrum) failure(ctx context.Context, conn net.Conn, err error) error {
	e.drop(conn)

	e.Lock()
	closed := e.closed
	e.Unlock()

	if closed {
		return fault.ErrBackendDisconnected
	}
	if nil != ctx.Err() {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %s", fault.ErrBackendRequestFailed, err)
}
