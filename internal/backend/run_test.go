// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"testing"

	apperrors "docquery/cli/internal/errors"
	"docquery/cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	calls int
	resp  model.Response
	err   error
}

func (f *fakeAPI) Query(ctx context.Context, req model.Request) (model.Response, error) {
	f.calls++
	return f.resp, f.err
}

func TestRun(t *testing.T) {
	req := model.Request{Documents: "https://example.com/policy.pdf", Questions: []string{"a", "b"}}

	tests := []struct {
		name      string
		req       model.Request
		demo      bool
		token     string
		api       *fakeAPI
		wantKind  apperrors.Kind
		wantCalls int
	}{
		{
			name:      "success",
			req:       req,
			token:     "t",
			api:       &fakeAPI{resp: model.Response{Answers: make([]model.Answer, 2)}},
			wantCalls: 1,
		},
		{
			name:     "validation stops before backend",
			req:      model.Request{Questions: []string{"a"}},
			demo:     true,
			api:      &fakeAPI{},
			wantKind: apperrors.Validation,
		},
		{
			name:     "missing token in live mode",
			req:      req,
			api:      &fakeAPI{},
			wantKind: apperrors.Validation,
		},
		{
			name:      "backend failure passes through",
			req:       req,
			token:     "t",
			api:       &fakeAPI{err: apperrors.WithStatus(apperrors.Remote, "invalid token", 401)},
			wantKind:  apperrors.Remote,
			wantCalls: 1,
		},
		{
			name:      "foreign error becomes unexpected",
			req:       req,
			token:     "t",
			api:       &fakeAPI{err: errors.New("boom")},
			wantKind:  apperrors.Unexpected,
			wantCalls: 1,
		},
		{
			name:      "answer count mismatch",
			req:       req,
			token:     "t",
			api:       &fakeAPI{resp: model.Response{Answers: make([]model.Answer, 1)}},
			wantKind:  apperrors.Integrity,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Run(context.Background(), tt.api, tt.req, tt.demo, tt.token)
			assert.Equal(t, tt.wantCalls, tt.api.calls)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Len(t, resp.Answers, len(tt.req.Questions))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Empty(t, resp.Answers)
		})
	}
}

func TestNewSelectsImplementation(t *testing.T) {
	_, isMock := New(Options{Demo: true}).(*Mock)
	assert.True(t, isMock)

	live, isHTTP := New(Options{Token: "t"}).(*HTTP)
	require.True(t, isHTTP)
	assert.Equal(t, DefaultBaseURL, live.baseURL)
	assert.Equal(t, "t", live.token)

	custom := New(Options{Token: "t", BaseURL: "https://qa.example.com/"}).(*HTTP)
	assert.Equal(t, "https://qa.example.com", custom.baseURL)
}
