package rpcclient

import "github.com/shopspring/decimal"

// BlockchainInfo models getblockchaininfo.
type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	Time                 int64   `json:"time"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	ChainWork            string  `json:"chainwork"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
}

// MiningInfo models getmininginfo.
type MiningInfo struct {
	Blocks        int64   `json:"blocks"`
	Difficulty    float64 `json:"difficulty"`
	NetworkHashPS float64 `json:"networkhashps"`
	PooledTx      int64   `json:"pooledtx"`
	Chain         string  `json:"chain"`
}

// MempoolInfo models getmempoolinfo.
type MempoolInfo struct {
	Loaded        bool            `json:"loaded"`
	Size          int64           `json:"size"`
	Bytes         int64           `json:"bytes"`
	Usage         int64           `json:"usage"`
	TotalFee      decimal.Decimal `json:"total_fee"`
	MaxMempool    int64           `json:"maxmempool"`
	MempoolMinFee decimal.Decimal `json:"mempoolminfee"`
}

// BlockHeader holds the fields shared by every getblock verbosity.
type BlockHeader struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Size              int64   `json:"size"`
	StrippedSize      int64   `json:"strippedsize"`
	Weight            int64   `json:"weight"`
	Height            int64   `json:"height"`
	Version           int32   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint32  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	ChainWork         string  `json:"chainwork"`
	NTx               int     `json:"nTx"`
	PreviousBlockHash string  `json:"previousblockhash"`
	NextBlockHash     string  `json:"nextblockhash"`
}

// Block is getblock with verbosity 1: transactions as ids.
type Block struct {
	BlockHeader
	Tx []string `json:"tx"`
}

// BlockVerbose is getblock with verbosity 2: decoded transactions.
type BlockVerbose struct {
	BlockHeader
	Tx []Transaction `json:"tx"`
}

// Transaction models getrawtransaction verbose output and the entries of a
// verbosity 2 block.
type Transaction struct {
	Txid          string           `json:"txid"`
	Hash          string           `json:"hash"`
	Version       int32            `json:"version"`
	Size          int64            `json:"size"`
	VSize         int64            `json:"vsize"`
	Weight        int64            `json:"weight"`
	LockTime      uint32           `json:"locktime"`
	Vin           []Vin            `json:"vin"`
	Vout          []Vout           `json:"vout"`
	Fee           *decimal.Decimal `json:"fee,omitempty"`
	BlockHash     string           `json:"blockhash,omitempty"`
	Confirmations int64            `json:"confirmations,omitempty"`
	Time          int64            `json:"time,omitempty"`
	BlockTime     int64            `json:"blocktime,omitempty"`
}

// IsCoinbase reports whether the transaction mints the block reward.
func (t Transaction) IsCoinbase() bool {
	return len(t.Vin) > 0 && t.Vin[0].Coinbase != ""
}

// Confirmed reports whether the transaction is in a block.
func (t Transaction) Confirmed() bool {
	return t.BlockHash != "" && t.Confirmations > 0
}

// TotalOut sums the output values.
func (t Transaction) TotalOut() decimal.Decimal {
	total := decimal.Zero
	for _, out := range t.Vout {
		total = total.Add(out.Value)
	}
	return total
}

type Vin struct {
	Txid        string   `json:"txid,omitempty"`
	Vout        uint32   `json:"vout"`
	Coinbase    string   `json:"coinbase,omitempty"`
	Sequence    uint32   `json:"sequence"`
	TxInWitness []string `json:"txinwitness,omitempty"`
}

type Vout struct {
	Value        decimal.Decimal `json:"value"`
	N            uint32          `json:"n"`
	ScriptPubKey ScriptPubKey    `json:"scriptPubKey"`
}

type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	Address   string   `json:"address,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
}

// Addr returns the destination address, accepting both the current
// "address" field and the older "addresses" list.
func (s ScriptPubKey) Addr() string {
	if s.Address != "" {
		return s.Address
	}
	if len(s.Addresses) > 0 {
		return s.Addresses[0]
	}
	return ""
}
