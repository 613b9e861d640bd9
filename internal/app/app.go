// Package app wires configuration, adapters, services, and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/linguaweb/linguaweb-backend/internal/adapter/blobstore"
	"github.com/linguaweb/linguaweb-backend/internal/adapter/openai"
	"github.com/linguaweb/linguaweb-backend/internal/adapter/postgres"
	wordrepo "github.com/linguaweb/linguaweb-backend/internal/adapter/postgres/word"
	"github.com/linguaweb/linguaweb-backend/internal/config"
	"github.com/linguaweb/linguaweb-backend/internal/dictionary"
	"github.com/linguaweb/linguaweb-backend/internal/service/speech"
	"github.com/linguaweb/linguaweb-backend/internal/service/words"
	"github.com/linguaweb/linguaweb-backend/internal/transport/middleware"
	"github.com/linguaweb/linguaweb-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// Postgres and the blob store, builds the services, and serves HTTP until
// ctx is canceled.
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
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	nc, err := nats.Connect(cfg.Blob.URL, nats.Name("linguaweb-backend"))
	if err != nil {
		return fmt.Errorf("connect to nats: %w", err)
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		return fmt.Errorf("jetstream context: %w", err)
	}

	blobs, err := blobstore.New(js, cfg.Blob.Bucket)
	if err != nil {
		return fmt.Errorf("open blob bucket: %w", err)
	}

	dict, err := dictionary.New(cfg.Dictionary.WordsFile)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	ai := openai.NewClient(cfg.OpenAI, logger)
	txManager := postgres.NewTxManager(pool)
	wordsRepo := wordrepo.New(pool)

	wordsSvc := words.NewService(logger, wordsRepo, txManager, ai, ai, blobs, dict, ai.Voice())
	speechSvc := speech.NewService(logger, ai, cfg.Dictionary.MaxUploadBytes)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.RouterDeps{
		Words:      rest.NewWordsHandler(wordsSvc, logger),
		Text:       rest.NewTextHandler(wordsSvc, logger),
		Admin:      rest.NewAdminHandler(wordsSvc, logger),
		Speech:     rest.NewSpeechHandler(speechSvc, logger, cfg.Dictionary.MaxUploadBytes),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		AdminLimit: limiter.Limit(cfg.Server.AdminRateLimit),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
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

	return nil
}
