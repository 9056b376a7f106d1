package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockdash-service/internal/bootstrap"
	"stockdash-service/internal/config"
	httpserver "stockdash-service/internal/infrastructure/http"
	"stockdash-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	market, err := bootstrap.ProvideMarketData(cfg)
	if err != nil {
		logger.Fatal("bootstrap provider", zap.Error(err))
	}
	svc := bootstrap.ProvideDashboardService(market, cfg)
	srv := httpserver.NewServer(svc, cfg.PopularTickers)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server started",
			zap.String("addr", addr),
			zap.String("provider", cfg.Provider),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
