package explorer

import (
	"encoding/json"

	"opensy-web/internal/handler/request"
	"opensy-web/internal/handler/response"
	"opensy-web/pkg/rpcclient"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// StatusResponse carries the node's answers unchanged.
type StatusResponse struct {
	Info   json.RawMessage `json:"info" swaggertype:"object"`
	Mining json.RawMessage `json:"mining" swaggertype:"object"`
	Peers  json.RawMessage `json:"peers" swaggertype:"integer"`
}

// APIStatus godoc
// @Summary Node status
// @Description Blockchain info, mining info and peer count, fetched concurrently
// @Tags api
// @Produce json
// @Success 200 {object} explorer.StatusResponse
// @Failure 500 {object} response.ErrorBody
// @Router /api/status [get]
func (h *Handler) APIStatus(c *gin.Context) {
	var res StatusResponse
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		res.Info, err = h.node.Call(ctx, rpcclient.MethodGetBlockchainInfo)
		return err
	})
	g.Go(func() (err error) {
		res.Mining, err = h.node.Call(ctx, rpcclient.MethodGetMiningInfo)
		return err
	})
	g.Go(func() (err error) {
		res.Peers, err = h.node.Call(ctx, rpcclient.MethodGetConnectionCount)
		return err
	})
	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, res)
}

// APIBlock godoc
// @Summary Block by hash
// @Description getblock with verbosity 2, as returned by the node
// @Tags api
// @Produce json
// @Param hash path string true "block hash (64 hex characters)"
// @Success 200 {object} object
// @Failure 500 {object} response.ErrorBody
// @Router /api/block/{hash} [get]
func (h *Handler) APIBlock(c *gin.Context) {
	var req request.BlockURI
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	raw, err := h.node.GetBlockRaw(c.Request.Context(), req.Hash)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, raw)
}

// APITx godoc
// @Summary Transaction by id
// @Description getrawtransaction with verbose=true, as returned by the node
// @Tags api
// @Produce json
// @Param txid path string true "transaction id (64 hex characters)"
// @Success 200 {object} object
// @Failure 500 {object} response.ErrorBody
// @Router /api/tx/{txid} [get]
func (h *Handler) APITx(c *gin.Context) {
	var req request.TxURI
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	raw, err := h.node.GetRawTransactionRaw(c.Request.Context(), req.Txid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, raw)
}
