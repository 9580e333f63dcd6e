package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sbeeredd04/trecgen/internal/config"
	"github.com/sbeeredd04/trecgen/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the report generation HTTP service",
		Long: `Starts an HTTP service that generates TREC report PDFs on demand.

POST an inspection JSON export to /reports/trec to receive the location of
the generated PDF, or to /reports/fields for the form field preview.`,
		Example: `  # Start on the configured host and port
  trecgen serve

  # Start on a custom port
  trecgen serve --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if host != "" {
				cfg.Host = host
			}
			if port != "" {
				cfg.Port = port
			}

			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			handler := handlers.New(gen, cfg)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/reports/trec", handler.HandleGenerate)
			mux.HandleFunc("/reports/fields", handler.HandleFields)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := net.JoinHostPort(cfg.Host, cfg.Port)
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Report service available", "addr", addr, "url", "http://"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from HOST)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from PORT)")

	return cmd
}
