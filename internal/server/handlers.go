// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"docquery/cli/internal/backend"
	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/model"

	"go.uber.org/zap"
)

// maxRequestBody bounds the JSON request body.
const maxRequestBody = 1 << 20

// errorBody is the error shape clients read the "detail" field from.
type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	// Presence only: the token is opaque and never checked here.
	if bearerToken(r.Header.Get("Authorization")) == "" {
		s.respondError(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Debug("run request", zap.Int("questions", len(req.Questions)))

	resp, err := backend.Run(r.Context(), s.answerer, req, true, "")
	if err != nil {
		status := http.StatusBadGateway
		if apperrors.KindOf(err) == apperrors.Validation {
			status = http.StatusUnprocessableEntity
		} else if e, ok := apperrors.As(err); ok {
			s.logger.Error("answering failed", zap.String("detail", e.Detail()))
		}
		s.respondError(w, status, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, errorBody{Detail: detail})
}

// bearerToken extracts the token from a value like "Bearer <token>" case-insensitively.
// Returns the empty string if the value is not a bearer credential.
func bearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 || !strings.EqualFold(v[:6], "bearer") || v[6] != ' ' {
		return ""
	}
	return strings.TrimSpace(v[7:])
}
