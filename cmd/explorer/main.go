package main

import (
	"errors"
	"fmt"
	"os"

	"opensy-web/internal/server"
	"opensy-web/pkg/chainparams"
	"opensy-web/pkg/config"
	"opensy-web/pkg/logger"
	"opensy-web/pkg/rpcclient"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const missingPasswordHelp = `RPC_PASSWORD is not set. The explorer will not start without node credentials.
Generate a strong password with:

    openssl rand -hex 32

then set it as rpcpassword in the node's opensy.conf and export RPC_PASSWORD
with the same value before starting the explorer.`

// @title OpenSY Explorer API
// @version 1.0
// @description Read-only JSON API over an OpenSY node.
// @license.name MIT
// @BasePath /
func main() {
	// 0. 初始化 Config
	cfg, err := config.Load(viper.New(), config.Explorer)
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

	// 2. 节点 RPC 客户端，缺少密码时在监听端口之前退出
	node, err := rpcclient.New(cfg.RPC)
	if errors.Is(err, config.ErrMissingRPCPassword) {
		logger.Fatal(missingPasswordHelp)
	}
	if err != nil {
		logger.Fatal("RPC client init failed", zap.Error(err))
	}

	// 3. 注册 OpenSY 网络参数，用于地址解析
	if err := chainparams.Register(); err != nil {
		logger.Fatal("chain params registration failed", zap.Error(err))
	}

	// 4. 路由
	router, err := server.NewExplorerRouter(cfg, node)
	if err != nil {
		logger.Fatal("router init failed", zap.Error(err))
	}

	logger.Info("🚀 OpenSY explorer starting",
		zap.String("addr", cfg.App.Addr()),
		zap.String("rpc", node.URL()),
		zap.String("default_lang", cfg.App.DefaultLang),
		zap.String("coin", cfg.Coin.Symbol))

	// 5. 启动并阻塞直到收到退出信号
	if err := server.New(cfg.App.Addr(), router).Run(); err != nil {
		logger.Fatal("HTTP Server failure", zap.Error(err))
	}
}
