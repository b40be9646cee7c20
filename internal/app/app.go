package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/czytanka/backend/internal/adapter/postgres"
	cardrepo "github.com/czytanka/backend/internal/adapter/postgres/card"
	unrecrepo "github.com/czytanka/backend/internal/adapter/postgres/unrecognized"
	"github.com/czytanka/backend/internal/config"
	"github.com/czytanka/backend/internal/llm"
	"github.com/czytanka/backend/internal/service/cards"
	"github.com/czytanka/backend/internal/service/importer"
	"github.com/czytanka/backend/internal/service/reading"
	"github.com/czytanka/backend/internal/service/unrecognized"
	"github.com/czytanka/backend/internal/transport/middleware"
	"github.com/czytanka/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	cardRepo := cardrepo.New(pool)
	wordRepo := unrecrepo.New(pool)

	llmClient := llm.NewClient(cfg.LLM, logger)
	extractor := llm.NewExtractor(llmClient, cfg.LLM, logger)
	generator := llm.NewGenerator(llmClient, cfg.LLM, logger)

	cardsSvc := cards.NewService(logger, cardRepo)
	importSvc := importer.NewService(logger, cfg.Import, cardRepo, wordRepo, extractor)
	wordsSvc := unrecognized.NewService(logger, wordRepo)
	readingSvc := reading.NewService(logger, generator)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:          logger,
		Cards:        cardsSvc,
		Imports:      importSvc,
		Unrecognized: wordsSvc,
		Reading:      readingSvc,
		DB:           pool,
		Version:      BuildVersion(),
		RateLimit:    cfg.RateLimit,
		CORS:         cfg.CORS,
		Limiter:      limiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped cleanly")
	return nil
}
