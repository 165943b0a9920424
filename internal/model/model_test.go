// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package model

import (
	"encoding/json"
	"testing"

	apperrors "docquery/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		demo    bool
		token   string
		wantMsg string
	}{
		{
			name:  "demo mode without token",
			req:   Request{Documents: "https://example.com/policy.pdf", Questions: []string{"What is covered?"}},
			demo:  true,
			token: "",
		},
		{
			name:  "live mode with token",
			req:   Request{Documents: "https://example.com/policy.pdf", Questions: []string{"What is covered?"}},
			token: "secret",
		},
		{
			name:    "missing document",
			req:     Request{Documents: "  ", Questions: []string{"What is covered?"}},
			demo:    true,
			wantMsg: "Please provide a document URL and at least one question",
		},
		{
			name:    "no questions",
			req:     Request{Documents: "https://example.com/policy.pdf"},
			demo:    true,
			wantMsg: "Please provide a document URL and at least one question",
		},
		{
			name:    "blank question",
			req:     Request{Documents: "https://example.com/policy.pdf", Questions: []string{"ok", " "}},
			demo:    true,
			wantMsg: "Question 2 is empty",
		},
		{
			name:    "live mode without token",
			req:     Request{Documents: "https://example.com/policy.pdf", Questions: []string{"What is covered?"}},
			wantMsg: "Please provide a bearer token or enable demo mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.demo, tt.token)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, apperrors.Validation, apperrors.KindOf(err))
		})
	}
}

func TestCheckAlignment(t *testing.T) {
	req := Request{Documents: "doc", Questions: []string{"a", "b"}}

	assert.NoError(t, CheckAlignment(req, Response{Answers: make([]Answer, 2)}))

	err := CheckAlignment(req, Response{Answers: make([]Answer, 1)})
	require.Error(t, err)
	assert.Equal(t, apperrors.Integrity, apperrors.KindOf(err))
	assert.Equal(t, "backend returned 1 answers for 2 questions", err.Error())
}

func TestAnswerPageKnown(t *testing.T) {
	assert.False(t, Answer{}.PageKnown())
	assert.False(t, Answer{Page: Page(-1)}.PageKnown())
	assert.True(t, Answer{Page: Page(0)}.PageKnown())
	assert.True(t, Answer{Page: Page(12)}.PageKnown())
}

func TestResponseDecodesNullAndMissingPage(t *testing.T) {
	body := `{"answers":[{"answer":"a","clause":"c","section":"","page":null,"rationale":"r"},{"answer":"b","clause":"","section":"S","rationale":""},{"answer":"c","clause":"","section":"","page":7,"rationale":""}]}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Answers, 3)
	assert.Nil(t, resp.Answers[0].Page)
	assert.Nil(t, resp.Answers[1].Page)
	require.NotNil(t, resp.Answers[2].Page)
	assert.Equal(t, 7, *resp.Answers[2].Page)
}

func TestRequestWireNames(t *testing.T) {
	b, err := json.Marshal(Request{Documents: "https://example.com/a.pdf", Questions: []string{"q1", "q2"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"documents":"https://example.com/a.pdf","questions":["q1","q2"]}`, string(b))
}
