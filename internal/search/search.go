// Package search turns a free-text query into the explorer page it names.
package search

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"opensy-web/pkg/logger"
	"opensy-web/pkg/monitor"
	"opensy-web/pkg/rpcclient"
	"opensy-web/pkg/validator"

	"go.uber.org/zap"
)

type Kind string

const (
	KindEmpty       Kind = "empty"
	KindBlock       Kind = "block"
	KindTransaction Kind = "transaction"
	KindAddress     Kind = "address"
	KindNotFound    Kind = "not_found"
)

// Outcome is where a query leads. Redirect is empty for KindNotFound.
type Outcome struct {
	Kind     Kind
	Redirect string
}

// Node is the part of the node API the classifier needs.
type Node interface {
	GetBlockHashAt(ctx context.Context, height json.Number) (string, error)
	GetBlock(ctx context.Context, hash string) (*rpcclient.Block, error)
	GetRawTransaction(ctx context.Context, txid string) (*rpcclient.Transaction, error)
}

var digits = regexp.MustCompile(`^\d+$`)

// step returns ok=false to hand the query to the next step.
type step func(ctx context.Context, q string) (Outcome, bool)

// Classifier tries, in order: block height, block or transaction hash,
// address prefix. Node failures never surface; they only move on.
type Classifier struct {
	node     Node
	prefixes []string
	steps    []step
}

func New(node Node, addressPrefixes []string) *Classifier {
	c := &Classifier{node: node, prefixes: addressPrefixes}
	c.steps = []step{c.byHeight, c.byHash, c.byAddressPrefix}
	return c
}

func (c *Classifier) Classify(ctx context.Context, query string) Outcome {
	q := strings.TrimSpace(query)
	out := Outcome{Kind: KindEmpty, Redirect: "/"}
	if q != "" {
		out = c.run(ctx, q)
	}
	monitor.ObserveSearch(string(out.Kind))
	return out
}

func (c *Classifier) run(ctx context.Context, q string) Outcome {
	for _, s := range c.steps {
		if out, ok := s(ctx, q); ok {
			return out
		}
	}
	return Outcome{Kind: KindNotFound}
}

func (c *Classifier) byHeight(ctx context.Context, q string) (Outcome, bool) {
	if !digits.MatchString(q) {
		return Outcome{}, false
	}
	// 不在本地判断范围，任何位数都交给节点；前导零不是合法的 JSON 数字
	height := strings.TrimLeft(q, "0")
	if height == "" {
		height = "0"
	}
	hash, err := c.node.GetBlockHashAt(ctx, json.Number(height))
	if err != nil {
		logger.Debug("search: no block at height", zap.String("height", height), zap.Error(err))
		return Outcome{}, false
	}
	return Outcome{Kind: KindBlock, Redirect: "/block/" + url.PathEscape(hash)}, true
}

func (c *Classifier) byHash(ctx context.Context, q string) (Outcome, bool) {
	if !validator.IsHash256(q) {
		return Outcome{}, false
	}
	if _, err := c.node.GetBlock(ctx, q); err == nil {
		return Outcome{Kind: KindBlock, Redirect: "/block/" + q}, true
	}
	if _, err := c.node.GetRawTransaction(ctx, q); err != nil {
		logger.Debug("search: hash is neither block nor transaction", zap.String("q", q), zap.Error(err))
		return Outcome{}, false
	}
	return Outcome{Kind: KindTransaction, Redirect: "/tx/" + q}, true
}

func (c *Classifier) byAddressPrefix(_ context.Context, q string) (Outcome, bool) {
	for _, p := range c.prefixes {
		if p != "" && strings.HasPrefix(q, p) {
			return Outcome{Kind: KindAddress, Redirect: "/address/" + url.PathEscape(q)}, true
		}
	}
	return Outcome{}, false
}
