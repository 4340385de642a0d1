package search

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"opensy-web/pkg/rpcclient"
	"opensy-web/pkg/rpcclient/rpctest"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPrefixes = []string{"syl1", "F", "3"}

const blockNotFound = btcjson.RPCErrorCode(-5)

// emptyNode knows no blocks and no transactions.
func emptyNode(t *testing.T) *rpctest.Node {
	node := rpctest.NewNode(t)
	node.Fail(rpcclient.MethodGetBlockHash, -8, "Block height out of range")
	node.Fail(rpcclient.MethodGetBlock, blockNotFound, "Block not found")
	node.Fail(rpcclient.MethodGetRawTransaction, blockNotFound, "No such mempool or blockchain transaction")
	return node
}

func classify(t *testing.T, node *rpctest.Node, q string) Outcome {
	return New(node.Client(t), defaultPrefixes).Classify(context.Background(), q)
}

func TestClassifyHeight(t *testing.T) {
	node := emptyNode(t)
	hash := strings.Repeat("ab", 32)
	node.Handle(rpcclient.MethodGetBlockHash, func(params []json.RawMessage) (interface{}, *btcjson.RPCError) {
		if string(params[0]) != "840000" {
			return nil, &btcjson.RPCError{Code: -8, Message: "Block height out of range"}
		}
		return hash, nil
	})

	out := classify(t, node, "840000")

	assert.Equal(t, Outcome{Kind: KindBlock, Redirect: "/block/" + hash}, out)
	assert.Equal(t, []string{"getblockhash"}, node.Methods())
}

func TestClassifyUnknownHeightFallsThrough(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, "99999999")

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Empty(t, out.Redirect)
	assert.Equal(t, []string{"getblockhash"}, node.Methods())
}

func TestClassifySixtySixZeros(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, strings.Repeat("0", 66))

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Equal(t, []string{"getblockhash"}, node.Methods())
}

func TestClassifyDigitHashTriesHeightThenHash(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, strings.Repeat("0", 64))

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Equal(t, []string{"getblockhash", "getblock", "getrawtransaction"}, node.Methods())
}

func TestClassifyHugeHeightStillAsksNode(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, strings.Repeat("9", 20))

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Equal(t, []string{"getblockhash"}, node.Methods())
	assert.Equal(t, strings.Repeat("9", 20), string(node.Calls()[0].Params[0]))
}

func TestClassifySixtyFourDigitsTriesAllRules(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, strings.Repeat("1", 64))

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Equal(t, []string{"getblockhash", "getblock", "getrawtransaction"}, node.Methods())
	assert.Equal(t, strings.Repeat("1", 64), string(node.Calls()[0].Params[0]))
}

func TestClassifyLeadingZerosSentAsNumber(t *testing.T) {
	node := emptyNode(t)

	classify(t, node, "007")
	classify(t, node, strings.Repeat("0", 66))

	require.Len(t, node.Calls(), 2)
	assert.Equal(t, "7", string(node.Calls()[0].Params[0]))
	assert.Equal(t, "0", string(node.Calls()[1].Params[0]))
}

func TestClassifyBlockHash(t *testing.T) {
	node := emptyNode(t)
	q := strings.Repeat("Ab", 32)
	node.Result(rpcclient.MethodGetBlock, map[string]interface{}{"hash": strings.ToLower(q), "height": 1})

	out := classify(t, node, q)

	assert.Equal(t, Outcome{Kind: KindBlock, Redirect: "/block/" + q}, out)
	assert.Equal(t, []string{"getblock"}, node.Methods())
}

func TestClassifyTransaction(t *testing.T) {
	node := emptyNode(t)
	q := strings.Repeat("c", 64)
	node.Result(rpcclient.MethodGetRawTransaction, map[string]interface{}{"txid": q})

	out := classify(t, node, q)

	assert.Equal(t, Outcome{Kind: KindTransaction, Redirect: "/tx/" + q}, out)
	assert.Equal(t, []string{"getblock", "getrawtransaction"}, node.Methods())
	calls := node.Calls()
	assert.JSONEq(t, `true`, string(calls[1].Params[1]))
}

func TestClassifyUnknownHash(t *testing.T) {
	node := emptyNode(t)

	out := classify(t, node, strings.Repeat("d", 64))

	assert.Equal(t, KindNotFound, out.Kind)
	assert.Equal(t, []string{"getblock", "getrawtransaction"}, node.Methods())
}

func TestClassifyAddressPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		q        string
		redirect string
		methods  []string
	}{
		{"bech32", "syl1qw508d6qejxtdg4y5r3zarvary0c5xw7k", "/address/syl1qw508d6qejxtdg4y5r3zarvary0c5xw7k", nil},
		{"legacy F", "FsomeLegacyAddress", "/address/FsomeLegacyAddress", nil},
		{"script 3", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", "/address/3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", nil},
		{"digit 3 tries height first", "3", "/address/3", []string{"getblockhash"}},
		{"path characters are escaped", "F/../admin", "/address/F%2F..%2Fadmin", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := emptyNode(t)

			out := classify(t, node, tt.q)

			assert.Equal(t, Outcome{Kind: KindAddress, Redirect: tt.redirect}, out)
			if tt.methods == nil {
				assert.Empty(t, node.Methods())
			} else {
				assert.Equal(t, tt.methods, node.Methods())
			}
		})
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, q := range []string{"hello", "abc", "bc1qxyz", strings.Repeat("g", 64)} {
		t.Run(q, func(t *testing.T) {
			node := emptyNode(t)

			out := classify(t, node, q)

			assert.Equal(t, KindNotFound, out.Kind)
			assert.Empty(t, node.Methods())
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	node := emptyNode(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		out := classify(t, node, q)
		assert.Equal(t, Outcome{Kind: KindEmpty, Redirect: "/"}, out)
	}
	assert.Empty(t, node.Methods())
}

func TestClassifyTrimsQuery(t *testing.T) {
	node := emptyNode(t)
	node.Result(rpcclient.MethodGetBlockHash, "00ff")

	out := classify(t, node, "  12 ")

	require.Equal(t, KindBlock, out.Kind)
	assert.Equal(t, "/block/00ff", out.Redirect)
	assert.JSONEq(t, `12`, string(node.Calls()[0].Params[0]))
}

func TestCustomPrefixes(t *testing.T) {
	node := emptyNode(t)
	c := New(node.Client(t), []string{"tsyl1", ""})

	assert.Equal(t, KindAddress, c.Classify(context.Background(), "tsyl1qxyz").Kind)
	assert.Equal(t, KindNotFound, c.Classify(context.Background(), "syl1qxyz").Kind)
}
