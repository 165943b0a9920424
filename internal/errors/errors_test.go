// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageHidesCause(t *testing.T) {
	cause := stderrors.New("dial tcp 127.0.0.1:8000: connect: connection refused")
	err := Wrap(Transport, "Network error: Unable to connect to the API server", cause)

	assert.Equal(t, "Network error: Unable to connect to the API server", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Detail(), "connection refused")
	assert.False(t, err.HasStatus())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantOK     bool
	}{
		{name: "remote failure", err: WithStatus(Remote, "invalid token", 401), wantStatus: 401, wantOK: true},
		{name: "wrapped remote failure", err: fmt.Errorf("query: %w", WithStatus(Remote, "boom", 500)), wantStatus: 500, wantOK: true},
		{name: "transport failure", err: New(Transport, "unreachable")},
		{name: "foreign error", err: stderrors.New("plain")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := StatusOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(New(Validation, "missing")))
	assert.Equal(t, Integrity, KindOf(fmt.Errorf("wrapped: %w", New(Integrity, "mismatch"))))
	assert.Equal(t, Unexpected, KindOf(stderrors.New("plain")))
}

func TestDetail(t *testing.T) {
	e := WithStatus(Remote, "HTTP 500: Internal Server Error", 500)
	require.True(t, e.HasStatus())
	assert.Equal(t, "remote: HTTP 500: Internal Server Error (status 500)", e.Detail())
}
