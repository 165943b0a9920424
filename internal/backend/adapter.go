// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the question-answering capability the CLI depends on.
// It defines the API contract and two interchangeable implementations: an HTTP
// client for a live backend and a deterministic demo responder that never touches
// the network.
package backend

import (
	"context"

	"docquery/cli/internal/model"
)

//go:generate mockgen -destination=mock_api.go -package=backend docquery/cli/internal/backend API

// API answers a set of questions about a document.
// Implementations return exactly one answer per question, in question order,
// or fail with an *errors.E. There are no partial results.
type API interface {
	Query(ctx context.Context, req model.Request) (model.Response, error)
}
