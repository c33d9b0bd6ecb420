// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/logger"
)

const (
	requestTimeout    = 30 * time.Second
	defaultRate       = 5.0 // requests per second
	defaultMaxRetries = 2
	retryDelay        = 100 * time.Millisecond
	maximumReplySize  = 16 * 1024 * 1024
)

// rate limited JSON over HTTP GET
type restClient struct {
	sync.Mutex

	log        *logger.L
	url        string
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	quit       chan struct{}
	closed     bool
}

func newRestClient(log *logger.L, conf HTTPConfiguration, defaultURL string) *restClient {
	url := strings.TrimRight(conf.URL, "/")
	if "" == url {
		url = defaultURL
	}
	r := conf.Rate
	if r <= 0 {
		r = defaultRate
	}
	retries := conf.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &restClient{
		log: log,
		url: url,
		client: &http.Client{
			Timeout: requestTimeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(r), 1),
		maxRetries: retries,
		quit:       make(chan struct{}),
	}
}

// close the client, in flight requests are cancelled
func (c *restClient) disconnect() {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.quit)
	c.client.CloseIdleConnections()
}

// GET path and decode the JSON reply
func (c *restClient) fetchJSON(ctx context.Context, path string, reply interface{}) error {
	status, body, err := c.fetch(ctx, path)
	if nil != err {
		return err
	}
	if http.StatusOK != status {
		return fmt.Errorf("%w: status: %d on: %q", fault.ErrBackendRequestFailed, status, path)
	}
	return c.decode(path, body, reply)
}

func (c *restClient) decode(path string, body []byte, reply interface{}) error {
	if err := json.Unmarshal(body, reply); nil != err {
		c.log.Warnf("GET: %s  bad reply: %q", path, body)
		return fmt.Errorf("%w: %s", fault.ErrUnexpectedBackendReply, err)
	}
	return nil
}

// GET path, retrying transport failures
//
// any HTTP status is returned to the caller with its body
func (c *restClient) fetch(ctx context.Context, path string) (int, []byte, error) {

	// abort the request when the client is disconnected
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	url := c.url + path

	var lastErr error
	for i := 0; i <= c.maxRetries; i += 1 {
		select {
		case <-c.quit:
			return 0, nil, fault.ErrBackendDisconnected
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		default:
		}

		if err := c.limiter.Wait(ctx); nil != err {
			return 0, nil, err
		}

		status, body, err := c.get(ctx, url)
		if nil == err {
			return status, body, nil
		}

		lastErr = err
		c.log.Debugf("GET: %s  attempt: %d  error: %s", url, i+1, err)
		if i < c.maxRetries {
			time.Sleep(time.Duration(i+1) * retryDelay)
		}
	}

	select {
	case <-c.quit:
		return 0, nil, fault.ErrBackendDisconnected
	default:
	}
	return 0, nil, fmt.Errorf("%w: after %d attempts: %s", fault.ErrBackendRequestFailed, c.maxRetries+1, lastErr)
}

func (c *restClient) get(ctx context.Context, url string) (int, []byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return 0, nil, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if nil != err {
		return 0, nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maximumReplySize))
	if nil != err {
		return 0, nil, err
	}
	return response.StatusCode, body, nil
}
