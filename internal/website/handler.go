// Package website serves the localized marketing pages.
package website

import (
	"net/http"
	"strings"

	"opensy-web/internal/locale"
	"opensy-web/internal/view"
	"opensy-web/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	locales     *locale.Catalog[locale.Website]
	coin        config.CoinConfig
	explorerURL string
}

func New(cfg *config.Config, locales *locale.Catalog[locale.Website]) *Handler {
	return &Handler{
		locales:     locales,
		coin:        cfg.Coin,
		explorerURL: strings.TrimRight(cfg.Explorer.URL, "/"),
	}
}

// Register mounts the pages on r. r must already use locale.Middleware for
// the website catalog.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.render("index", "home"))
	r.GET("/download", h.render("download", "download"))
	r.GET("/community", h.render("community", "community"))
	r.GET("/docs", h.render("docs", "docs"))
}

func (h *Handler) render(tmpl, current string) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := locale.From(c, h.locales)
		c.HTML(http.StatusOK, tmpl, view.WebsitePage{
			Base: view.Base{
				Lang:        l.Lang,
				Dir:         l.Dir,
				CoinName:    h.coin.Name,
				CoinSymbol:  h.coin.Symbol,
				CurrentPage: current,
			},
			T:           l.T,
			ExplorerURL: h.explorerURL,
		})
	}
}
