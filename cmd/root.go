// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for docquery.
// It asks questions about a document through a question-answering backend,
// runs a local backend for development, and manages non-secret settings,
// using the Cobra CLI framework with a pterm terminal UI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"docquery/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// errReported marks a failure that has already been shown to the user.
var errReported = errors.New("failure already reported")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "docquery",
	Short:         "Ask questions about policy documents",
	Long:          `docquery sends a document reference and a list of questions to a question-answering backend and shows each answer with the clause, section and page it cites.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "docquery %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// Interrupts cancel the command's context so in-flight queries stop promptly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, logging.PresentError("Error", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
