package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"opensy-web/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	httpServer *http.Server
}

func New(addr string, handler http.Handler) *App {
	return &App{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run 启动服务并阻塞，直到收到 SIGINT/SIGTERM
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	// 1. Start HTTP
	go func() {
		logger.Info("Starting HTTP Server", zap.String("addr", ln.Addr().String()))
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 2. Wait for a signal or a server failure
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("⚠️  Shutting down server...")

	// 3. Graceful Shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP Server forced to shutdown", zap.Error(err))
		return err
	}
	logger.Info("Server exited properly")
	return nil
}
