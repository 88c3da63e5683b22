package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"contratos/internal/backend"
	"contratos/internal/cli"
	"contratos/internal/export"
	"contratos/internal/export/google"
	apphttp "contratos/internal/http"
	applog "contratos/internal/log"
	"contratos/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	factory := backend.NewFactory(logger)
	res, err := factory.CreateSource(ctx, backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize dataset backend",
			applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	source := res.Source

	// Optional export mirror to a shared spreadsheet.
	var mirror export.Mirror
	if cfg.GoogleExportEnabled() {
		client, err := google.NewFromEnv(ctx)
		if err != nil {
			logger.Warn("Export mirror disabled", applog.FieldError, err)
		} else {
			mirror = client
			logger.Info("Export mirror enabled")
		}
	}

	sessions := session.NewStore(cfg.SessionTTL)

	srv := apphttp.NewServer(":"+cfg.Port, source, sessions, mirror, cfg.ProtocolLinkBase, logger)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	shutdownCtx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		if res.Cleanup != nil {
			if err := res.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", applog.FieldError, err)
			}
		}
	})

	logger.Info("Starting contratos server",
		applog.FieldOperation, applog.OpStartup,
		"port", cfg.Port,
		applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(shutdownCtx, done)
	logger.Info("Server stopped gracefully")
}
