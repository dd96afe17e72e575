package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/okian/podium/internal/adapters/http/api"
	"github.com/okian/podium/internal/adapters/http/swagger"
	"github.com/okian/podium/internal/adapters/report"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/spf13/cobra"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the charts, maps and view JSON of the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), c.cfg, c.log)
		},
	}
}

// newHTTPServer wires the read API over the configured output directories.
func newHTTPServer(cfg *config.Config) *http.Server {
	src := report.NewFileSource(filepath.Join(cfg.ReportDir, report.FileViewsJSON))
	mux := http.NewServeMux()
	swagger.Register(mux)
	api.NewServer(src, cfg.ChartDir).Register(mux)

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// serve blocks until ctx is cancelled, then shuts the server down.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	srv := newHTTPServer(cfg)
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%w: %w", api.ErrServe, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return err
	}
	log.Info(ctx, "server stopped")
	return nil
}
