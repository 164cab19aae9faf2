package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-assistant-be/internal/bootstrap"
	"study-assistant-be/internal/config"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/server"
	"study-assistant-be/internal/tracer"
	"study-assistant-be/pkg/database"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	if cfg.App.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, gormDB, cfg, sysLogger)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer container.Close()

	srv := server.New(cfg, container)

	// 4. Run server and background workers until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		container.WebSocketHub.Run(gctx)
		return nil
	})

	if container.ConsumerService != nil {
		g.Go(func() error {
			sysLogger.Info("MAIN", "Starting chat event consumer", nil)
			return container.ConsumerService.Consume(gctx)
		})
	}

	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sysLogger.Error("MAIN", "Server stopped with error", map[string]interface{}{"error": err.Error()})
	}
}
