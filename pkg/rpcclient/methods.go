package rpcclient

import (
	"context"
	"encoding/json"
	"strconv"
)

func (c *Client) GetBlockchainInfo(ctx context.Context) (*BlockchainInfo, error) {
	var info BlockchainInfo
	if err := c.CallFor(ctx, &info, MethodGetBlockchainInfo); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetMiningInfo(ctx context.Context) (*MiningInfo, error) {
	var info MiningInfo
	if err := c.CallFor(ctx, &info, MethodGetMiningInfo); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetConnectionCount(ctx context.Context) (int64, error) {
	var n int64
	err := c.CallFor(ctx, &n, MethodGetConnectionCount)
	return n, err
}

func (c *Client) GetMempoolInfo(ctx context.Context) (*MempoolInfo, error) {
	var info MempoolInfo
	if err := c.CallFor(ctx, &info, MethodGetMempoolInfo); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	return c.GetBlockHashAt(ctx, json.Number(strconv.FormatInt(height, 10)))
}

// GetBlockHashAt sends height as a JSON number without converting it, so
// heights beyond int64 still reach the node, which rejects them itself.
func (c *Client) GetBlockHashAt(ctx context.Context, height json.Number) (string, error) {
	var hash string
	err := c.CallFor(ctx, &hash, MethodGetBlockHash, height)
	return hash, err
}

// GetBlock calls getblock with the node's default verbosity (1).
func (c *Client) GetBlock(ctx context.Context, hash string) (*Block, error) {
	var block Block
	if err := c.CallFor(ctx, &block, MethodGetBlock, hash); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockVerbose calls getblock with verbosity 2.
func (c *Client) GetBlockVerbose(ctx context.Context, hash string) (*BlockVerbose, error) {
	var block BlockVerbose
	if err := c.CallFor(ctx, &block, MethodGetBlock, hash, 2); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockRaw returns the verbosity 2 block exactly as the node sent it.
func (c *Client) GetBlockRaw(ctx context.Context, hash string) (json.RawMessage, error) {
	return c.Call(ctx, MethodGetBlock, hash, 2)
}

// GetRawTransaction calls getrawtransaction with verbose=true.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (*Transaction, error) {
	var tx Transaction
	if err := c.CallFor(ctx, &tx, MethodGetRawTransaction, txid, true); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetRawTransactionRaw returns the verbose transaction exactly as the node sent it.
func (c *Client) GetRawTransactionRaw(ctx context.Context, txid string) (json.RawMessage, error) {
	return c.Call(ctx, MethodGetRawTransaction, txid, true)
}
