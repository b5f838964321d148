package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usage-data/internal/config"
	"usage-data/internal/database"
	httpapi "usage-data/internal/http"
	"usage-data/internal/logger"
	"usage-data/internal/repository"
	"usage-data/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "usage-data")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		zlog.Fatal("failed to open database", zap.String("path", cfg.DB.Path), zap.Error(err))
	}

	usageRepo := repository.NewSQLiteUsageRepository(db)
	usageService := service.NewUsageService(usageRepo, zlog)
	postsClient := service.NewPlaceholderClient(cfg.Posts.BaseURL, cfg.Posts.Timeout, zlog)

	router := httpapi.NewRouter(zlog)
	router.RegisterUsageRoutes(httpapi.NewUsageHandler(usageService, zlog))
	router.RegisterExternalRoutes(httpapi.NewExternalHandler(postsClient, zlog))
	router.RegisterHealthRoute()

	handler := httpapi.RequestLogger(zlog)(httpapi.CORS(router))
	srv := service.NewServer(cfg.HTTP.Addr, handler, zlog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		zlog.Error("HTTP server exited", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = database.Close(db)
}
