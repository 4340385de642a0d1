// Package explorer serves the block explorer pages and its JSON API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"opensy-web/internal/handler/request"
	"opensy-web/internal/locale"
	"opensy-web/internal/search"
	"opensy-web/internal/view"
	"opensy-web/pkg/config"
	"opensy-web/pkg/errno"
	"opensy-web/pkg/logger"
	"opensy-web/pkg/rpcclient"
	"opensy-web/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Node is the node API used by the explorer. *rpcclient.Client satisfies it.
type Node interface {
	search.Node
	GetBlockHash(ctx context.Context, height int64) (string, error)
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
	GetBlockchainInfo(ctx context.Context) (*rpcclient.BlockchainInfo, error)
	GetMiningInfo(ctx context.Context) (*rpcclient.MiningInfo, error)
	GetConnectionCount(ctx context.Context) (int64, error)
	GetMempoolInfo(ctx context.Context) (*rpcclient.MempoolInfo, error)
	GetBlockVerbose(ctx context.Context, hash string) (*rpcclient.BlockVerbose, error)
	GetBlockRaw(ctx context.Context, hash string) (json.RawMessage, error)
	GetRawTransactionRaw(ctx context.Context, txid string) (json.RawMessage, error)
}

type Handler struct {
	node         Node
	classifier   *search.Classifier
	locales      *locale.Catalog[locale.Explorer]
	coin         config.CoinConfig
	latestBlocks int
}

func New(node Node, cfg *config.Config, locales *locale.Catalog[locale.Explorer]) *Handler {
	return &Handler{
		node:         node,
		classifier:   search.New(node, cfg.Explorer.AddressPrefixes),
		locales:      locales,
		coin:         cfg.Coin,
		latestBlocks: cfg.Explorer.LatestBlocks,
	}
}

// Register mounts the pages and the API on r. r must already use
// locale.Middleware for the explorer catalog.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/block/:hash", h.Block)
	r.GET("/block-height/:height", h.BlockHeight)
	r.GET("/tx/:txid", h.Tx)
	r.GET("/address/:address", h.Address)
	r.GET("/search", h.Search)

	api := r.Group("/api", publicAPI)
	{
		api.GET("/status", h.APIStatus)
		api.GET("/block/:hash", h.APIBlock)
		api.GET("/tx/:txid", h.APITx)
	}
}

// publicAPI lets the website read /api/status from the browser.
func publicAPI(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Next()
}

func (h *Handler) page(c *gin.Context, current string) view.ExplorerPage {
	l := locale.From(c, h.locales)
	return view.ExplorerPage{
		Base: view.Base{
			Lang:        l.Lang,
			Dir:         l.Dir,
			CoinName:    h.coin.Name,
			CoinSymbol:  h.coin.Symbol,
			CurrentPage: current,
		},
		T: l.T,
	}
}

// renderError shows err on the error page with status 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	_, msg := errno.Decode(err)
	if _, isNode := rpcclient.RPCMessage(err); !isNode && !isBindError(err) {
		logger.Error("explorer request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.HTML(http.StatusInternalServerError, "error", view.ErrorPage{
		ExplorerPage: h.page(c, "error"),
		Message:      msg,
	})
}

func bindError(err error) error {
	return errno.ErrBind.WithMessage(validator.GetErrorMsg(err))
}

func isBindError(err error) bool {
	var e errno.Errno
	return errors.As(err, &e) && e.Code == errno.ErrBind.Code
}

func (h *Handler) Block(c *gin.Context) {
	var req request.BlockURI
	if err := c.ShouldBindUri(&req); err != nil {
		h.renderError(c, bindError(err))
		return
	}
	block, err := h.node.GetBlockVerbose(c.Request.Context(), req.Hash)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "block", view.BlockPage{ExplorerPage: h.page(c, "block"), Block: block})
}

func (h *Handler) BlockHeight(c *gin.Context) {
	var req request.HeightURI
	if err := c.ShouldBindUri(&req); err != nil {
		h.renderError(c, bindError(err))
		return
	}
	hash, err := h.node.GetBlockHash(c.Request.Context(), req.Height)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/block/"+url.PathEscape(hash))
}

func (h *Handler) Tx(c *gin.Context) {
	var req request.TxURI
	if err := c.ShouldBindUri(&req); err != nil {
		h.renderError(c, bindError(err))
		return
	}
	tx, err := h.node.GetRawTransaction(c.Request.Context(), req.Txid)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "tx", view.TxPage{ExplorerPage: h.page(c, "tx"), Tx: tx})
}

// Search redirects to the page the query names, or renders the localized
// not-found page with 404.
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")

	out := h.classifier.Classify(c.Request.Context(), q)
	if out.Redirect != "" {
		c.Redirect(http.StatusFound, out.Redirect)
		return
	}
	c.HTML(http.StatusNotFound, "error", view.ErrorPage{
		ExplorerPage: h.page(c, "search"),
		NotFound:     true,
		Query:        q,
	})
}
