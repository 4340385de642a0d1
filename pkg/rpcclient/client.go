// Package rpcclient talks JSON-RPC 1.0 to an OpenSY node over HTTP POST.
package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"opensy-web/pkg/config"
	"opensy-web/pkg/logger"
	"opensy-web/pkg/monitor"

	"github.com/btcsuite/btcd/btcjson"
	"go.uber.org/zap"
)

// Node methods used by the explorer.
const (
	MethodGetBlockchainInfo  = "getblockchaininfo"
	MethodGetMiningInfo      = "getmininginfo"
	MethodGetConnectionCount = "getconnectioncount"
	MethodGetMempoolInfo     = "getmempoolinfo"
	MethodGetBlockHash       = "getblockhash"
	MethodGetBlock           = "getblock"
	MethodGetRawTransaction  = "getrawtransaction"
)

// Client is safe for concurrent use; calls are not serialized.
type Client struct {
	url        string
	user       string
	pass       string
	httpClient *http.Client
	id         atomic.Uint64 // next unique request id
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New returns a node client. It fails with config.ErrMissingRPCPassword when
// no password is configured and logs a warning for weak passwords.
func New(cfg config.RPCConfig, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, weak := cfg.WeakPassword(); weak {
		logger.Warn("RPC password appears weak, generate a secure one with: openssl rand -hex 32",
			zap.String("rpc_user", cfg.User))
	}

	c := &Client{
		url:        cfg.URL(),
		user:       cfg.User,
		pass:       cfg.Password,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the credential-free node endpoint.
func (c *Client) URL() string {
	return c.url
}

// Call performs one authenticated request and returns the raw result. A node
// side failure is returned as *btcjson.RPCError; anything else is a transport
// error.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	started := time.Now()
	result, err := c.call(ctx, method, params)

	outcome := monitor.OutcomeOK
	if err != nil {
		outcome = monitor.OutcomeTransportError
		if _, ok := RPCMessage(err); ok {
			outcome = monitor.OutcomeRPCError
		}
		logger.Debug("json-rpc call failed", zap.String("method", method), zap.Error(err))
	}
	monitor.ObserveRPC(method, outcome, started)

	return result, err
}

// CallFor is Call followed by decoding the result into out.
func (c *Client) CallFor(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("json-rpc unmarshal %s result: %w", method, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	id := c.id.Add(1)

	body, err := btcjson.NewRequest(btcjson.RpcVersion1, id, method, params)
	if err != nil {
		return nil, fmt.Errorf("json-rpc build request: %w", err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("json-rpc marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("json-rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.user, c.pass)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("json-rpc transport: %w", err)
	}
	// 必须读完并关闭 Body，连接才能复用
	defer res.Body.Close()
	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("json-rpc read response: %w", err)
	}

	// bitcoind answers RPC errors with 404/500 and a JSON body, so the body
	// is decoded before the status is looked at.
	var rpcRes btcjson.Response
	if err := json.Unmarshal(resBytes, &rpcRes); err != nil {
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("json-rpc status code: %s", res.Status)
		}
		return nil, fmt.Errorf("json-rpc unmarshal response: %w", err)
	}
	if rpcRes.Error != nil {
		return nil, rpcRes.Error
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("json-rpc status code: %s", res.Status)
	}
	if rpcRes.ID == nil || !sameID(*rpcRes.ID, id) {
		return nil, fmt.Errorf("json-rpc wrong ID returned for %s", method)
	}
	if rpcRes.Result == nil {
		return nil, errors.New("json-rpc missing result")
	}
	return rpcRes.Result, nil
}

func sameID(got interface{}, want uint64) bool {
	switch v := got.(type) {
	case float64:
		return v == float64(want)
	case json.Number:
		return v.String() == fmt.Sprint(want)
	default:
		return false
	}
}

// RPCMessage returns the node's error message when err carries one.
func RPCMessage(err error) (string, bool) {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Message, true
	}
	return "", false
}
