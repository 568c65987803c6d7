package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HimTar/golang-transactions/internal/api"
	"github.com/HimTar/golang-transactions/internal/config"
	"github.com/HimTar/golang-transactions/internal/ledger"
	"github.com/HimTar/golang-transactions/internal/seed"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var envFile string
	var addr string
	var seedPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the transaction service HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seedPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}

			logger := stdoutLogger(cfg.Logging)
			log.Logger = logger

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, ln, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to transactionservice.yaml")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with TXS_* overrides")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&seedPath, "seed", "", "seed file loaded at startup (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	return cmd
}

// loadConfig applies .env, the YAML file and the environment, in that order.
func loadConfig(configPath, envFile string) (*config.Config, error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runServe serves the ledger on ln until ctx is cancelled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func runServe(ctx context.Context, cfg *config.Config, ln net.Listener, logger zerolog.Logger) error {
	l := ledger.New(ledger.NewStore(), &logger)

	if cfg.Seed != "" {
		n, err := seed.LoadFile(cfg.Seed, l)
		if err != nil {
			ln.Close()
			return fmt.Errorf("loading seed: %w", err)
		}
		logger.Info().Str("path", cfg.Seed).Int("transactions", n).Msg("seed loaded")
	}

	srv := &http.Server{
		Handler:      api.NewRouter(api.NewHandler(l), logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Msg("server starting")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
