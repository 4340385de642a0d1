package view

import (
	"opensy-web/internal/locale"
	"opensy-web/pkg/chainparams"
	"opensy-web/pkg/rpcclient"
)

type ExplorerPage struct {
	Base
	T *locale.Explorer
}

type HomePage struct {
	ExplorerPage
	Info         *rpcclient.BlockchainInfo
	Mining       *rpcclient.MiningInfo
	Peers        int64
	Mempool      *rpcclient.MempoolInfo
	LatestBlocks []*rpcclient.Block // 按高度降序
}

type BlockPage struct {
	ExplorerPage
	Block *rpcclient.BlockVerbose
}

type TxPage struct {
	ExplorerPage
	Tx *rpcclient.Transaction
}

type AddressPage struct {
	ExplorerPage
	Address chainparams.AddressInfo
}

// ErrorPage shows either the localized not-found text or an error message.
type ErrorPage struct {
	ExplorerPage
	NotFound bool
	Query    string
	Message  string
}

type WebsitePage struct {
	Base
	T           *locale.Website
	ExplorerURL string
}
