package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoot-scheduler/config"
	"shoot-scheduler/logger"
	"shoot-scheduler/routes"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.JWT.UsesDefaultSecret() {
		appLog.Warn("JWT_SECRET is not set, using the built-in development secret")
	}

	// Initialize database
	db, err := config.InitDB(cfg, appLog)
	if err != nil {
		appLog.Fatal("Failed to initialize database", "error", err)
	}
	if err := config.Migrate(db, appLog); err != nil {
		appLog.Fatal("Failed to migrate database", "error", err)
	}

	router := routes.SetupRouter(routes.Options{
		Config: cfg,
		DB:     db,
		Logger: appLog,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLog.Info("Server starting", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	appLog.Info("Server stopped")
}
