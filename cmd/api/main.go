package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.NewStore(cfg.CatalogName)
	if err := seedStore(ctx, cfg, store); err != nil {
		log.Fatal().Err(err).Str("seed_source", cfg.SeedSource).Msg("cannot seed catalog")
	}

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst).TrustForwardedFor(cfg.TrustProxy)
	go rateLimiter.Run(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, store, rateLimiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Str("catalog", store.Name()).Int("titles", store.TotalTitles()).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

func seedStore(ctx context.Context, cfg config.Config, store *catalog.Store) error {
	var src catalog.Source
	switch cfg.SeedSource {
	case config.SeedNone:
		log.Info().Msg("starting with an empty catalog")
		return nil
	case config.SeedFile:
		src = catalog.FileSource{Path: cfg.SeedFile}
	case config.SeedPostgres:
		pool, err := openDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		// The database is only read at startup.
		defer pool.Close()
		src = catalog.NewPostgresSource(pool)
	default:
		src = catalog.BuiltinSource{}
	}

	_, err := catalog.Seed(ctx, store, src)
	return err
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", config.RedactDSN(dsn), err)
	}
	log.Info().Str("dsn", config.RedactDSN(dsn)).Msg("database connection OK")
	return pool, nil
}
