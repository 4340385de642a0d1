package explorer

import (
	"context"
	"net/http"

	"opensy-web/internal/handler/request"
	"opensy-web/internal/view"
	"opensy-web/pkg/chainparams"
	"opensy-web/pkg/rpcclient"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Home renders the network status and the latest blocks.
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	page := view.HomePage{ExplorerPage: h.page(c, "home")}

	// 1. 四个互不依赖的调用并发执行，任一失败即取消其余
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Info, err = h.node.GetBlockchainInfo(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Mining, err = h.node.GetMiningInfo(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Peers, err = h.node.GetConnectionCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Mempool, err = h.node.GetMempoolInfo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.renderError(c, err)
		return
	}

	// 2. 从链顶向下取最近的区块
	blocks, err := h.latest(ctx, page.Info.Blocks)
	if err != nil {
		h.renderError(c, err)
		return
	}
	page.LatestBlocks = blocks

	c.HTML(http.StatusOK, "index", page)
}

// maxBlockFetches bounds the concurrent height lookups of one home page.
const maxBlockFetches = 8

// latest fetches up to h.latestBlocks blocks ending at tip, highest first.
// Heights are fetched in parallel; results[i] is height tip-i.
func (h *Handler) latest(ctx context.Context, tip int64) ([]*rpcclient.Block, error) {
	n := int64(h.latestBlocks)
	if tip+1 < n {
		n = tip + 1
	}
	if n <= 0 {
		return nil, nil
	}

	results := make([]*rpcclient.Block, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBlockFetches)
	for i := int64(0); i < n; i++ {
		g.Go(func() error {
			hash, err := h.node.GetBlockHash(gctx, tip-i)
			if err != nil {
				return err
			}
			block, err := h.node.GetBlock(gctx, hash)
			if err != nil {
				return err
			}
			results[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Address renders what can be said about an address without an index.
func (h *Handler) Address(c *gin.Context) {
	var req request.AddressURI
	if err := c.ShouldBindUri(&req); err != nil {
		h.renderError(c, bindError(err))
		return
	}
	c.HTML(http.StatusOK, "address", view.AddressPage{
		ExplorerPage: h.page(c, "address"),
		Address:      chainparams.Describe(req.Address),
	})
}
