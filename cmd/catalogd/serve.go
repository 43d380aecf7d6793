// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/api"
	"github.com/taibuivan/catalog/internal/core/concept"
	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/migration"
	pgstore "github.com/taibuivan/catalog/internal/platform/postgres"
	redisstore "github.com/taibuivan/catalog/internal/platform/redis"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

const startupTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server until SIGINT or SIGTERM.

Requires DATABASE_URL and JWT_PUBLIC_KEY_PATH. REDIS_URL enables the
concept field cache and SEARCH_BACKEND=postgres enables free-text search.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

/*
runServe wires the server.

 1. Load configuration and build the logger.
 2. Connect to PostgreSQL and, when configured, Redis.
 3. Apply migrations unless MIGRATE_ON_START is false.
 4. Wire repositories, services and handlers.
 5. Serve until ctx is cancelled, then drain in-flight requests.
*/
func runServe(ctx context.Context) error {
	// ── 1. Configuration & Logger ─────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(os.Stdout, cfg.TextLogs(), cfg.Debug)
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("search_backend", cfg.SearchBackend),
		slog.Bool("field_cache", cfg.CacheEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(ctx, startupTimeout)
	defer startupCancel()

	// ── 2. Storage ────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	var rdb *goredis.Client
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 3. Migrations ─────────────────────────────────────────────────────
	if cfg.MigrateOnStart {
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return err
		}
	}

	// ── 4. Wiring ─────────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	if err != nil {
		return fmt.Errorf("initialize token service: %w", err)
	}

	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}
	if rdb != nil {
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	var conceptRepository concept.Repository = concept.NewPostgresRepository(pool)
	if rdb != nil {
		conceptRepository = concept.NewCachedRepository(conceptRepository, rdb, cfg.FieldCacheTTL, log)
	}

	var searcher concept.Searcher
	if cfg.SearchEnabled() {
		searcher = concept.NewPostgresSearcher(pool)
	}

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Concept:   concept.NewHandler(concept.NewService(conceptRepository, searcher, log), cfg.PublicBaseURL),
		Field:     field.NewHandler(field.NewService(field.NewPostgresRepository(pool)), cfg.PublicBaseURL),
	}

	server := api.NewServer(ctx, cfg, log, tokens, handlers)

	// ── 5. Serve & Graceful Shutdown ──────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped cleanly")
	return nil
}
