// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"docquery/cli/internal/backend"
	"docquery/cli/internal/config"
	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/httperrors"
	"docquery/cli/internal/input"
	"docquery/cli/internal/logging"
	"docquery/cli/internal/model"
	"docquery/cli/internal/render"
	"docquery/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// askOptions holds the flags of the ask command.
type askOptions struct {
	document      string
	questions     []string
	questionsFile string
	demo          bool
	token         string
	baseURL       string
	json          bool
	verbose       bool
}

// askSettings is the effective configuration after merging flags, env and file.
type askSettings struct {
	demo     bool
	baseURL  string
	logLevel string
}

var askOpts askOptions

// askCmd sends one document and its questions to the backend and prints the answers.
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask questions about a document",
	Long: `The ask command sends a document reference and one or more questions to the
question-answering backend and prints each answer with the clause, section and page
it cites.

In demo mode (the default until configured otherwise) answers come from a built-in
sample responder and no backend or token is needed. In live mode the bearer token is
taken from --token or prompted for; it is never stored.`,
	Example: `  docquery ask --document https://example.com/policy.pdf -q "What is the grace period?"
  docquery ask --document ./policy.pdf --questions-file questions.txt --demo=false`,
	RunE: runAsk,
}

func init() {
	f := askCmd.Flags()
	f.StringVar(&askOpts.document, "document", "", "document URL or local PDF path")
	f.StringArrayVarP(&askOpts.questions, "question", "q", nil, "question to ask (repeatable)")
	f.StringVar(&askOpts.questionsFile, "questions-file", "", "file with one question per line (- for stdin)")
	f.BoolVar(&askOpts.demo, "demo", true, "use the built-in sample responder instead of the backend")
	f.StringVar(&askOpts.token, "token", "", "bearer token for the live backend")
	f.StringVar(&askOpts.baseURL, "base-url", "", "live backend base URL")
	f.BoolVar(&askOpts.json, "json", false, "print the raw response as JSON")
	f.BoolVar(&askOpts.verbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s := resolveAskSettings(cfg, askOpts, cmd.Flags().Changed("demo"))

	logger, err := logging.New(s.logLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req, err := buildRequest(askOpts)
	if err == nil {
		err = req.Validate(s.demo, tokenOrPrompt(s.demo, &askOpts.token))
	}
	if err != nil {
		httperrors.Present(err, s.baseURL)
		return errReported
	}
	token := askOpts.token

	logger.Debug("asking",
		zap.Bool("demo", s.demo),
		zap.String("base_url", logging.Mask(s.baseURL)),
		zap.String("document", logging.Mask(req.Documents)),
		zap.Int("questions", len(req.Questions)),
	)

	api := backend.New(backend.Options{Demo: s.demo, Token: token, BaseURL: s.baseURL, Logger: logger})
	interactive := terminal.IsInteractive() && terminal.StdoutIsTerminal()
	if s.demo && !askOpts.json {
		pterm.Info.Println("Demo mode: answers come from the built-in sample responder.")
	}

	out := cmd.OutOrStdout()
	r := render.NewRenderer(out, terminal.Width())
	for {
		resp, err := runQuery(cmd.Context(), api, req, s.demo, token, interactive && !askOpts.json)
		if err == nil {
			if askOpts.json {
				return r.JSON(resp)
			}
			r.Answers(req, resp)
			return nil
		}

		if cmd.Context().Err() != nil {
			pterm.Warning.Println("Cancelled.")
			return errReported
		}
		httperrors.Present(err, s.baseURL)
		logger.Debug("query failed", zap.String("detail", logging.Mask(detailOf(err))))
		if !interactive || !terminal.Confirm("Try again?") {
			return errReported
		}
	}
}

// runQuery issues one query, with a spinner on stderr when spin is set.
func runQuery(ctx context.Context, api backend.API, req model.Request, demo bool, token string, spin bool) (model.Response, error) {
	if spin {
		stop := startAreaSpinner(os.Stderr, "Analyzing document...")
		defer stop()
	}
	return backend.Run(ctx, api, req, demo, token)
}

// resolveAskSettings merges flags over environment and file settings held in cfg.
// demoSet reports whether --demo was given explicitly.
func resolveAskSettings(cfg config.Config, opts askOptions, demoSet bool) askSettings {
	s := askSettings{
		demo:     cfg.DemoOrDefault(),
		baseURL:  cfg.APIBaseURL,
		logLevel: cfg.LogLevel,
	}
	if demoSet {
		s.demo = opts.demo
	}
	if v := strings.TrimSpace(opts.baseURL); v != "" {
		s.baseURL = strings.TrimRight(v, "/")
	}
	if opts.verbose {
		s.logLevel = "debug"
	}
	return s
}

// buildRequest resolves the document and collects questions from flags and file.
func buildRequest(opts askOptions) (model.Request, error) {
	doc, err := input.ResolveDocument(opts.document)
	if err != nil {
		return model.Request{}, apperrors.Wrap(apperrors.Validation, err.Error(), err)
	}

	var fromFile []string
	if opts.questionsFile != "" {
		fromFile, err = input.ReadQuestionsFile(opts.questionsFile)
		if err != nil {
			return model.Request{}, apperrors.Wrap(apperrors.Validation,
				fmt.Sprintf("Cannot read questions file %s", opts.questionsFile), err)
		}
	}
	return model.Request{
		Documents: doc,
		Questions: input.MergeQuestions(opts.questions, fromFile),
	}, nil
}

// tokenOrPrompt returns the token, prompting for it on a terminal in live mode
// when none was given. The prompted value is stored back into token.
func tokenOrPrompt(demo bool, token *string) string {
	*token = strings.TrimSpace(*token)
	if demo || *token != "" || !terminal.IsInteractive() {
		return *token
	}
	v, err := terminal.ReadSecret("Bearer token: ")
	if err == nil {
		*token = v
	}
	return *token
}

func detailOf(err error) string {
	if e, ok := apperrors.As(err); ok {
		return e.Detail()
	}
	return err.Error()
}
