// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the data exchanged with a question-answering backend.
// The types are transport-agnostic: the live HTTP client and the demo responder
// both produce and consume them, and the JSON tags are the wire contract.
package model

import (
	"fmt"
	"strings"

	apperrors "docquery/cli/internal/errors"
)

// Request asks a set of questions about one document.
// Answers are matched to questions by position, so order matters.
type Request struct {
	// Documents is a URL or an opaque handle to uploaded content.
	Documents string   `json:"documents"`
	Questions []string `json:"questions"`
}

// Answer is the backend's answer to a single question with its citation.
type Answer struct {
	Answer  string `json:"answer"`
	Clause  string `json:"clause"`
	Section string `json:"section"`
	// Page is nil when the backend does not know the page.
	Page      *int   `json:"page"`
	Rationale string `json:"rationale"`
}

// PageKnown reports whether the answer cites a usable page number.
// Some backends signal "unknown" with a negative page.
func (a Answer) PageKnown() bool {
	return a.Page != nil && *a.Page >= 0
}

// Response holds one answer per question of the originating Request.
type Response struct {
	Answers []Answer `json:"answers"`
}

// Page returns a pointer to p, for building answers with a known page.
func Page(p int) *int { return &p }

const (
	msgMissingInput = "Please provide a document URL and at least one question"
	msgMissingToken = "Please provide a bearer token or enable demo mode"
)

// Validate checks the request before any backend is invoked.
// A token is only required outside demo mode.
func (r Request) Validate(demo bool, token string) error {
	if strings.TrimSpace(r.Documents) == "" || len(r.Questions) == 0 {
		return apperrors.New(apperrors.Validation, msgMissingInput)
	}
	for i, q := range r.Questions {
		if strings.TrimSpace(q) == "" {
			return apperrors.New(apperrors.Validation, fmt.Sprintf("Question %d is empty", i+1))
		}
	}
	if !demo && strings.TrimSpace(token) == "" {
		return apperrors.New(apperrors.Validation, msgMissingToken)
	}
	return nil
}

// CheckAlignment verifies that resp carries exactly one answer per question of req.
func CheckAlignment(req Request, resp Response) error {
	if len(resp.Answers) != len(req.Questions) {
		return apperrors.New(apperrors.Integrity,
			fmt.Sprintf("backend returned %d answers for %d questions", len(resp.Answers), len(req.Questions)))
	}
	return nil
}
