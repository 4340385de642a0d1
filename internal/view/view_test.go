package view

import (
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"opensy-web/internal/locale"
	"opensy-web/pkg/chainparams"
	"opensy-web/pkg/rpcclient"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, r *Renderer, name string, data any) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w))
	return w.Body.String()
}

func explorerBase(t *testing.T, lang string) ExplorerPage {
	cat, err := locale.LoadExplorer("ar")
	require.NoError(t, err)
	dict, tag := cat.Lookup(lang)
	return ExplorerPage{
		Base: Base{Lang: tag, Dir: locale.Dir(tag), CoinName: "OpenSY", CoinSymbol: "SYL", CurrentPage: "home"},
		T:    dict,
	}
}

func TestNewParsesAllPages(t *testing.T) {
	ex, err := New(Explorer)
	require.NoError(t, err)
	pages := ex.Pages()
	sort.Strings(pages)
	assert.Equal(t, []string{"address", "block", "error", "index", "tx"}, pages)

	web, err := New(Website)
	require.NoError(t, err)
	pages = web.Pages()
	sort.Strings(pages)
	assert.Equal(t, []string{"community", "docs", "download", "index"}, pages)
}

func TestMissingTemplate(t *testing.T) {
	r, err := New(Explorer)
	require.NoError(t, err)
	err = r.Instance("nope", nil).Render(httptest.NewRecorder())
	assert.ErrorContains(t, err, `"nope"`)
}

func TestHomePage(t *testing.T) {
	r, err := New(Explorer)
	require.NoError(t, err)

	page := HomePage{
		ExplorerPage: explorerBase(t, "ar"),
		Info:         &rpcclient.BlockchainInfo{Blocks: 12345},
		Mining:       &rpcclient.MiningInfo{Difficulty: 1234.5, NetworkHashPS: 2.5e12},
		Peers:        8,
		Mempool:      &rpcclient.MempoolInfo{Size: 3, Bytes: 2048},
		LatestBlocks: []*rpcclient.Block{
			{BlockHeader: rpcclient.BlockHeader{Hash: strings.Repeat("b", 64), Height: 12345, Time: time.Now().Unix(), NTx: 2, Size: 900}},
			{BlockHeader: rpcclient.BlockHeader{Hash: strings.Repeat("a", 64), Height: 12344, Time: time.Now().Unix(), NTx: 1, Size: 300}},
		},
	}
	html := render(t, r, "index", page)

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, `lang="ar"`)
	assert.Contains(t, html, "حالة الشبكة")
	assert.Contains(t, html, "12,345")
	assert.Contains(t, html, "TH/s")
	assert.Contains(t, html, `href="/block/`+strings.Repeat("b", 64)+`"`)
	assert.Less(t, strings.Index(html, `data-height="12345"`), strings.Index(html, `data-height="12344"`))
}

func TestBlockAndTxPages(t *testing.T) {
	r, err := New(Explorer)
	require.NoError(t, err)
	base := explorerBase(t, "en")

	coinbase := rpcclient.Transaction{
		Txid: strings.Repeat("c", 64),
		Vin:  []rpcclient.Vin{{Coinbase: "03"}},
		Vout: []rpcclient.Vout{{Value: decimal.RequireFromString("10000"), ScriptPubKey: rpcclient.ScriptPubKey{Address: "syl1qminer"}}},
	}
	block := &rpcclient.BlockVerbose{
		BlockHeader: rpcclient.BlockHeader{Hash: strings.Repeat("d", 64), Height: 7, PreviousBlockHash: strings.Repeat("e", 64)},
		Tx:          []rpcclient.Transaction{coinbase},
	}
	html := render(t, r, "block", BlockPage{ExplorerPage: base, Block: block})
	assert.Contains(t, html, "Block Details")
	assert.Contains(t, html, "Previous Block")
	assert.NotContains(t, html, "Next Block")
	assert.Contains(t, html, "Coinbase (Mining Reward)")
	assert.Contains(t, html, "10000.00000000 SYL")

	fee := decimal.RequireFromString("0.0001")
	tx := coinbase
	tx.Fee = &fee
	html = render(t, r, "tx", TxPage{ExplorerPage: base, Tx: &tx})
	assert.Contains(t, html, "Pending")
	assert.Contains(t, html, "0.00010000 SYL")
	assert.Contains(t, html, `href="/address/syl1qminer"`)
}

func TestAddressAndErrorPages(t *testing.T) {
	r, err := New(Explorer)
	require.NoError(t, err)
	base := explorerBase(t, "en")

	html := render(t, r, "address", AddressPage{ExplorerPage: base, Address: chainparams.AddressInfo{Address: "Fabc", Kind: chainparams.KindUnknown}})
	assert.Contains(t, html, "Fabc")
	assert.Contains(t, html, "address indexing")
	assert.Contains(t, html, "does not look like a valid")

	html = render(t, r, "error", ErrorPage{ExplorerPage: base, NotFound: true, Query: "<script>"})
	assert.Contains(t, html, "Not Found")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")

	html = render(t, r, "error", ErrorPage{ExplorerPage: base, Message: "Block not found"})
	assert.Contains(t, html, "Error")
	assert.Contains(t, html, "Block not found")
}

func TestWebsitePages(t *testing.T) {
	r, err := New(Website)
	require.NoError(t, err)
	cat, err := locale.LoadWebsite("en")
	require.NoError(t, err)

	for _, lang := range locale.Supported {
		dict, tag := cat.Lookup(lang)
		for _, name := range []string{"index", "download", "community", "docs"} {
			page := WebsitePage{
				Base:        Base{Lang: tag, Dir: locale.Dir(tag), CurrentPage: name},
				T:           dict,
				ExplorerURL: "https://explorer.opensy.net",
			}
			html := render(t, r, name, page)
			assert.Contains(t, html, `dir="`+locale.Dir(tag)+`"`, name)
			assert.Contains(t, html, dict.Footer.FreeSyria, name)
		}
	}
}

func TestAgo(t *testing.T) {
	defer func(orig func() time.Time) { now = orig }(now)
	fixed := time.Unix(1_000_000, 0)
	now = func() time.Time { return fixed }

	cat, err := locale.LoadExplorer("en")
	require.NoError(t, err)
	en, _ := cat.Lookup("en")

	assert.Equal(t, "just now", Ago(fixed.Unix()-10, en))
	assert.Equal(t, "5 minutes ago", Ago(fixed.Unix()-300, en))
	assert.Equal(t, "2 hours ago", Ago(fixed.Unix()-7200, en))
	assert.Equal(t, "3 days ago", Ago(fixed.Unix()-3*86400, en))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "0.00000001", Amount(decimal.New(1, -8)))
	assert.Equal(t, "10000.00000000", Amount(decimal.NewFromInt(10000)))
	assert.Equal(t, "abc", ShortHash("abc"))
	assert.Equal(t, "aaaaaaaa…bbbbbbbb", ShortHash(strings.Repeat("a", 32)+strings.Repeat("b", 32)))
	assert.Equal(t, "1970-01-02 00:00:00 UTC", UnixTime(86400))
	assert.Equal(t, "", UnixTime(0))
}

func TestIntHelpersIgnoreUnknownTypes(t *testing.T) {
	funcs := FuncMap()
	intComma := funcs["intComma"].(func(interface{}) string)
	bytes := funcs["bytes"].(func(interface{}) string)

	assert.Equal(t, "0", intComma("12"))
	assert.Equal(t, "0", intComma(nil))
	assert.Equal(t, "840,000", intComma(json.Number("840000")))
	assert.Equal(t, "0", intComma(json.Number("1.5")))
	assert.Equal(t, "0 B", bytes(struct{}{}))
}
