// server/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/api/handlers"
	"dc-directory-api-server/internal/api/routes"
	"dc-directory-api-server/internal/auth"
	"dc-directory-api-server/internal/database"
	"dc-directory-api-server/internal/logger"
	"dc-directory-api-server/internal/metrics"
	"dc-directory-api-server/internal/s3"
	"dc-directory-api-server/internal/socket"
	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("could not load config")
	}
	log := logger.New(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Store, with metrics and the change feed watching every commit
	hub := socket.NewHub(log)
	m := metrics.New()
	dcStore := store.New()
	dcStore.SetObserver(func(op store.Op, id string, size int) {
		m.ObserveStore(op, id, size)
		hub.Broadcast(socket.Event{Type: eventType(op), ID: id, Count: size})
	})

	// 3. Initial catalog
	if err := database.Seed(ctx, cfg, dcStore, log); err != nil {
		return err
	}

	authService, err := auth.NewService(cfg.Auth, cfg.JWT)
	if err != nil {
		return err
	}
	if cfg.Auth.PasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH is empty, admin login is disabled")
	}

	// 4. Optional S3 export
	var exporter handlers.CatalogExporter
	if cfg.S3.Enabled() {
		e, err := s3.NewExporter(ctx, cfg.S3)
		if err != nil {
			return err
		}
		exporter = e
	} else {
		log.Info().Msg("s3 bucket not configured, catalog export disabled")
	}

	router := routes.SetupRouter(routes.Dependencies{
		Config:   cfg,
		Store:    dcStore,
		Auth:     authService,
		Hub:      hub,
		Metrics:  m,
		Exporter: exporter,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Serve until a signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Int("records", dcStore.Len()).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func eventType(op store.Op) string {
	switch op {
	case store.OpInsert:
		return socket.EventCreated
	case store.OpUpdate:
		return socket.EventUpdated
	case store.OpDelete:
		return socket.EventDeleted
	default:
		return socket.EventReplaced
	}
}
