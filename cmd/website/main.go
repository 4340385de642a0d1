package main

import (
	"fmt"
	"os"

	"opensy-web/internal/server"
	"opensy-web/pkg/config"
	"opensy-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// 0. 初始化 Config
	cfg, err := config.Load(viper.New(), config.Website)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// 1. 初始化 Logger
	if err := logger.Init(cfg.App.Env, cfg.App.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 路由
	router, err := server.NewWebsiteRouter(cfg)
	if err != nil {
		logger.Fatal("router init failed", zap.Error(err))
	}

	logger.Info("🚀 OpenSY website starting",
		zap.String("addr", cfg.App.Addr()),
		zap.String("explorer_url", cfg.Explorer.URL),
		zap.String("default_lang", cfg.App.DefaultLang))

	// 3. 启动并阻塞直到收到退出信号
	if err := server.New(cfg.App.Addr(), router).Run(); err != nil {
		logger.Fatal("HTTP Server failure", zap.Error(err))
	}
}
