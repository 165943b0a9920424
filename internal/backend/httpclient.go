// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/logging"
	"docquery/cli/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunPath is the versioned endpoint that answers questions about a document.
const RunPath = "/api/v1/hackrx/run"

const (
	msgNetwork    = "Network error: Unable to connect to the API server"
	msgUnexpected = "An unexpected error occurred"
	// maxErrorBody bounds how much of a failed response is read for its detail.
	maxErrorBody = 1 << 20
)

// HTTP implements API against a live backend over REST.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://localhost:8000")
	baseURL string
	// token is sent as "Authorization: Bearer <token>"
	token string
	// client has no timeout; the transport defaults govern a hung request
	client *http.Client
	logger *zap.Logger
}

// newHTTP creates a new HTTP client with the given base URL and bearer token.
func newHTTP(baseURL, token string, logger *zap.Logger) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
		logger:  logger,
	}
}

// Query posts req to /api/v1/hackrx/run and returns the decoded response as-is.
// Failures are reported as *errors.E: Transport when no response arrived, Remote
// for a non-2xx status, Unexpected for everything else.
func (h *HTTP) Query(ctx context.Context, req model.Request) (model.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, err)
	}

	requestID := uuid.NewString()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+RunPath, bytes.NewReader(body))
	if err != nil {
		return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+h.token)
	httpReq.Header.Set("User-Agent", "docquery-cli/1.0")
	httpReq.Header.Set("X-Request-ID", requestID)

	h.logger.Debug("sending query",
		zap.String("url", h.baseURL+RunPath),
		zap.String("request_id", requestID),
		zap.String("document", logging.Mask(req.Documents)),
		zap.Int("questions", len(req.Questions)),
	)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			// The caller gave up; that is not a connectivity problem.
			return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, err)
		}
		h.logger.Debug("query transport failed", zap.String("request_id", requestID), zap.Error(err))
		return model.Response{}, apperrors.Wrap(apperrors.Transport, msgNetwork, err)
	}
	defer resp.Body.Close()

	h.logger.Debug("query answered",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return model.Response{}, apperrors.WithStatus(apperrors.Remote, remoteMessage(resp, b), resp.StatusCode)
	}

	var out model.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Response{}, apperrors.Wrap(apperrors.Unexpected, msgUnexpected, err)
	}
	return out, nil
}

// remoteMessage prefers the backend's {"detail": "..."} text and falls back to
// "HTTP <status>: <reason>" when the body is absent or unparseable.
func remoteMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if s, ok := payload.Detail.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, reasonPhrase(resp))
}

// reasonPhrase extracts the text after the code in resp.Status ("404 Not Found").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
