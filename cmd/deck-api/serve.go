// README: serve command; starts the HTTP server and shuts down on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httptransport "ridedeck/internal/http"
	"ridedeck/internal/logger"
	"ridedeck/internal/modules/citydata"
	"ridedeck/internal/modules/pricing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithAction(ctx, "serve")

	if cfg.CORS.AllowAll() && cfg.CORS.AllowCredentials {
		log.Warn(ctx, "cors credentials ignored with wildcard origin")
	}

	diagSvc := newDiagnostic(ctx, cfg, log)
	defer func() {
		if err := diagSvc.Close(); err != nil {
			log.Warn(ctx, "close diagnostic backend", "error", err.Error())
		}
	}()

	handler := httptransport.NewServer(httptransport.ServerDeps{
		CityData:   citydata.NewService(citydata.NewStore()),
		Pricing:    pricing.NewService(pricing.NewStore()),
		Diagnostic: diagSvc,
		Log:        log,
		CORS:       cfg.CORS,
		GinMode:    cfg.HTTP.GinMode,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening", "addr", cfg.HTTP.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "graceful shutdown failed", err)
		return err
	}
	return nil
}
