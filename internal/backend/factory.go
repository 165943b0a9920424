// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import "go.uber.org/zap"

// DefaultBaseURL is used when neither config nor environment name a backend.
const DefaultBaseURL = "http://localhost:8000"

// Options selects and configures a backend implementation.
type Options struct {
	// Demo selects the canned responder instead of the live backend.
	Demo bool
	// Token is the opaque bearer credential forwarded to the live backend.
	Token string
	// BaseURL is the live backend address; empty means DefaultBaseURL.
	BaseURL string
	Logger  *zap.Logger
}

// New creates the backend implementation selected by opts.
// Returns the demo responder when opts.Demo is set, the HTTP client otherwise.
func New(opts Options) API {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Demo {
		return NewMock(logger)
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return newHTTP(baseURL, opts.Token, logger)
}
