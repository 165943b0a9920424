// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"strings"
	"testing"

	"docquery/cli/internal/model"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPage(t *testing.T) {
	assert.Equal(t, "15", FormatPage(model.Answer{Page: model.Page(15)}))
	assert.Equal(t, "0", FormatPage(model.Answer{Page: model.Page(0)}))
	assert.Equal(t, PageUnknown, FormatPage(model.Answer{}))
	assert.Equal(t, PageUnknown, FormatPage(model.Answer{Page: model.Page(-1)}))
}

func TestAnswersPairsQuestionsInOrder(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	req := model.Request{
		Documents: "https://example.com/policy.pdf",
		Questions: []string{"What is the grace period?", "Is maternity covered?"},
	}
	resp := model.Response{Answers: []model.Answer{
		{Answer: "Thirty days.", Clause: "A grace period of thirty days", Section: "PREMIUM PAYMENT", Page: model.Page(8), Rationale: "Stated directly."},
		{Answer: "Yes.", Section: "MATERNITY BENEFITS"},
	}}

	var buf bytes.Buffer
	NewRenderer(&buf, 80).Answers(req, resp)
	out := buf.String()

	assert.Contains(t, out, "https://example.com/policy.pdf")
	first := strings.Index(out, "Q1. What is the grace period?")
	second := strings.Index(out, "Q2. Is maternity covered?")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	assert.Contains(t, out[first:second], "Thirty days.")
	assert.Contains(t, out[first:second], "Page:    8")
	assert.Contains(t, out[first:second], `"A grace period of thirty days"`)
	assert.Contains(t, out[first:second], "Why:     Stated directly.")
	assert.Contains(t, out[second:], "Page:    "+PageUnknown)
	assert.NotContains(t, out[second:], "Why:")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf, 80).JSON(model.Response{Answers: []model.Answer{{Answer: "a"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answers":[{"answer":"a","clause":"","section":"","page":null,"rationale":""}]}`, buf.String())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"a", "verylongword", "b"}, wrap("a verylongword b", 5))
}
