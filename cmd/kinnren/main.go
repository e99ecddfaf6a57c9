package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Akshaj-M/KinnrenWebsite-2/internal/config"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/database"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/logging"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/server"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store/memory"
	"github.com/Akshaj-M/KinnrenWebsite-2/internal/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	var st store.Storage
	switch cfg.StorageBackend {
	case "memory":
		st = memory.New()
		logger.Info("using in-memory storage")
	default:
		db, err := database.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		st = sqlite.New(db)
		logger.Info("using sqlite storage", "path", cfg.DBPath)
	}

	srv := server.New(st, cfg, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Background sweeps for expired sessions and stale rate limit entries.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := st.DeleteExpiredSessions(); err != nil {
					logger.Error("session sweep", "error", err)
				} else if n > 0 {
					logger.Info("session sweep", "deleted", n)
				}
				srv.RateLimiter().Cleanup()
			case <-sweepDone:
				return
			}
		}
	}()

	go func() {
		logger.Info("kinnren listening", "port", cfg.Port, "storage", cfg.StorageBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	close(sweepDone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
