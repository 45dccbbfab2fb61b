package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	kafka_impl "placid-connector/internal/broker/kafka"
	"placid-connector/internal/config"
	execute_h "placid-connector/internal/http-server/handler/execute"
	"placid-connector/internal/http-server/router"
	"placid-connector/internal/placid"
	minio_repo "placid-connector/internal/repository/binary/minio"
	execute_uc "placid-connector/internal/usecase/execute"
	render_uc "placid-connector/internal/usecase/render"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg      *config.Config
	server   *http.Server
	logger   *zlog.Zerolog
	producer *kafka_impl.ProducerClient
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	retries := cfg.DefaultRetryStrategy()

	client := placid.NewClient(cfg.Placid.BaseURL, cfg.Placid.APIKey, cfg.Placid.RequestTimeout, logger)

	renderUsecase := render_uc.New(client, logger)
	executor := execute_uc.New(renderUsecase, logger)

	var store execute_h.ObjectStore
	if cfg.Minio.Enabled() {
		objectStore, err := minio_repo.NewObjectStore(cfg, retries, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create object store: %w", err)
		}
		store = objectStore
	}

	var producer *kafka_impl.ProducerClient
	var publisher execute_h.ResultPublisher
	if cfg.Kafka.Enabled() {
		producer = kafka_impl.NewProducerClient(cfg)
		publisher = producer
	}

	executeHandler := execute_h.NewExecuteHandler(executor, client, publisher, store, logger)

	h := &router.Handler{
		ExecuteHandler: executeHandler,
	}

	mux := router.SetupRouter(h)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:      cfg,
		server:   server,
		logger:   logger,
		producer: producer,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("addr", a.cfg.Server.Addr).Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		if a.producer != nil {
			a.producer.Close()
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
