// Package rpctest provides an in-process fake node for tests of code that
// talks to the node through rpcclient.
package rpctest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"opensy-web/pkg/config"
	"opensy-web/pkg/rpcclient"

	"github.com/btcsuite/btcd/btcjson"
)

const (
	User     = "opensy"
	Password = "9f86d081884c7d659a2feaa0c55ad015"
)

// HandlerFunc answers one method. Returning a non-nil *btcjson.RPCError makes
// the node reply with an error body and HTTP 500, like bitcoind.
type HandlerFunc func(params []json.RawMessage) (interface{}, *btcjson.RPCError)

// Call is one request received by the node.
type Call struct {
	Method string
	Params []json.RawMessage
}

// Node is a fake JSON-RPC 1.0 server checking basic auth.
type Node struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	calls    []Call
}

// NewNode starts a node closed automatically at the end of the test.
func NewNode(t testing.TB) *Node {
	t.Helper()
	n := &Node{handlers: make(map[string]HandlerFunc)}
	n.Server = httptest.NewServer(http.HandlerFunc(n.serve))
	t.Cleanup(n.Close)
	return n
}

// Handle registers the answer for method, replacing any previous one.
func (n *Node) Handle(method string, h HandlerFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = h
}

// Result registers a fixed successful answer.
func (n *Node) Result(method string, result interface{}) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *btcjson.RPCError) {
		return result, nil
	})
}

// Fail registers a fixed node error.
func (n *Node) Fail(method string, code btcjson.RPCErrorCode, message string) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *btcjson.RPCError) {
		return nil, &btcjson.RPCError{Code: code, Message: message}
	})
}

// Calls returns a copy of every request received so far.
func (n *Node) Calls() []Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Call(nil), n.calls...)
}

// Methods returns the method names received so far, in arrival order.
func (n *Node) Methods() []string {
	calls := n.Calls()
	methods := make([]string, len(calls))
	for i, c := range calls {
		methods[i] = c.Method
	}
	return methods
}

// Config returns credentials pointing at this node.
func (n *Node) Config() config.RPCConfig {
	addr := strings.TrimPrefix(n.URL, "http://")
	host, port, _ := strings.Cut(addr, ":")
	return config.RPCConfig{Host: host, Port: port, User: User, Password: Password}
}

// Client returns an rpcclient connected to this node.
func (n *Node) Client(t testing.TB) *rpcclient.Client {
	t.Helper()
	c, err := rpcclient.New(n.Config(), rpcclient.WithHTTPClient(n.Server.Client()))
	if err != nil {
		t.Fatalf("rpcclient.New: %v", err)
	}
	return c
}

func (n *Node) serve(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != User || pass != Password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req btcjson.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls = append(n.calls, Call{Method: req.Method, Params: req.Params})
	h, found := n.handlers[req.Method]
	n.mu.Unlock()

	status := http.StatusOK
	var result interface{}
	var rpcErr *btcjson.RPCError
	switch {
	case !found:
		status = http.StatusNotFound
		rpcErr = &btcjson.RPCError{Code: btcjson.RPCErrorCode(-32601), Message: "Method not found"}
	default:
		result, rpcErr = h(req.Params)
		if rpcErr != nil {
			status = http.StatusInternalServerError
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Result interface{}       `json:"result"`
		Error  *btcjson.RPCError `json:"error"`
		ID     interface{}       `json:"id"`
	}{result, rpcErr, req.ID})
}
