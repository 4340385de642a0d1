package server

import (
	_ "opensy-web/docs/swagger"
	"opensy-web/internal/explorer"
	"opensy-web/internal/handler"
	"opensy-web/internal/locale"
	"opensy-web/internal/view"
	"opensy-web/internal/website"
	"opensy-web/pkg/config"
	"opensy-web/pkg/monitor"
	"opensy-web/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newEngine builds the engine and middleware shared by both applications.
func newEngine(app string, renderer *view.Renderer) (*gin.Engine, error) {
	// 0. 初始化监控指标和校验器
	monitor.Init()
	if err := validator.Init(); err != nil {
		return nil, err
	}

	// 1. 创建 Engine，日志由 zap 接管
	r := gin.New()
	r.HTMLRender = renderer

	// 2. 注册通用中间件
	r.Use(gin.Recovery(), RequestID(), RequestLogger(), monitor.PrometheusMiddleware(app))

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck(app))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if err := Static(r, "/static", view.Static()); err != nil {
		return nil, err
	}
	return r, nil
}

// NewExplorerRouter wires the explorer pages, API and Swagger UI.
func NewExplorerRouter(cfg *config.Config, node explorer.Node) (*gin.Engine, error) {
	renderer, err := view.New(view.Explorer)
	if err != nil {
		return nil, err
	}
	locales, err := locale.LoadExplorer(cfg.App.DefaultLang)
	if err != nil {
		return nil, err
	}

	r, err := newEngine(string(config.Explorer), renderer)
	if err != nil {
		return nil, err
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. 页面与 API
	pages := r.Group("/", locale.Middleware(locales))
	explorer.New(node, cfg, locales).Register(pages)
	return r, nil
}

// NewWebsiteRouter wires the marketing pages.
func NewWebsiteRouter(cfg *config.Config) (*gin.Engine, error) {
	renderer, err := view.New(view.Website)
	if err != nil {
		return nil, err
	}
	locales, err := locale.LoadWebsite(cfg.App.DefaultLang)
	if err != nil {
		return nil, err
	}

	r, err := newEngine(string(config.Website), renderer)
	if err != nil {
		return nil, err
	}

	pages := r.Group("/", locale.Middleware(locales))
	website.New(cfg, locales).Register(pages)
	return r, nil
}
