// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"docquery/cli/internal/backend"
	"docquery/cli/internal/config"
	"docquery/cli/internal/logging"
	"docquery/cli/internal/server"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shutdownTimeout bounds graceful shutdown of the local backend.
const shutdownTimeout = 5 * time.Second

var (
	serveHost string
	servePort int
)

// serveCmd runs a local backend that speaks the same wire contract as the real one
// and answers with the sample responder.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local question-answering backend",
	Long: `The serve command starts an HTTP server implementing the question-answering API
with the built-in sample responder. Point "docquery ask --demo=false" at it to try the
live path without the real backend. Any non-empty bearer token is accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		srv := server.NewServer(backend.NewMock(logger), &cfg.Server, logger)
		pterm.Success.Printf("Serving on http://%s (Ctrl+C to stop)\n", srv.Addr())

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("shutdown", zap.Error(err))
			return err
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "address to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
