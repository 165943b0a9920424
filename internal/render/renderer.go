// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render prints query results to the console.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"docquery/cli/internal/model"

	"github.com/pterm/pterm"
)

// PageUnknown is shown in place of a page number the backend did not give.
const PageUnknown = "Not specified"

// Renderer renders answers pairwise with the questions they answer.
type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer creates a renderer writing to w. Long quoted clauses wrap at width.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width < 40 {
		width = 80
	}
	return &Renderer{w: w, width: width}
}

// Answers prints a header for the document followed by every question and its answer.
// Questions and answers are paired by position; the caller has already checked
// that their counts match.
func (r *Renderer) Answers(req model.Request, resp model.Response) {
	fmt.Fprintln(r.w, pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Document: ")+
		pterm.NewStyle(pterm.FgLightBlue).Sprint(req.Documents))
	fmt.Fprintln(r.w)

	for i, q := range req.Questions {
		if i >= len(resp.Answers) {
			break
		}
		r.answer(i+1, q, resp.Answers[i])
	}
}

func (r *Renderer) answer(n int, question string, a model.Answer) {
	label := pterm.NewStyle(pterm.FgGray)

	fmt.Fprintln(r.w, pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("Q%d. %s", n, question))
	fmt.Fprintln(r.w, "   "+a.Answer)
	if a.Section != "" {
		fmt.Fprintln(r.w, label.Sprint("   Section: ")+a.Section)
	}
	fmt.Fprintln(r.w, label.Sprint("   Page:    ")+FormatPage(a))
	if a.Clause != "" {
		for _, line := range wrap("\""+a.Clause+"\"", r.width-6) {
			fmt.Fprintln(r.w, "   "+pterm.NewStyle(pterm.Italic).Sprint("│ "+line))
		}
	}
	if a.Rationale != "" {
		fmt.Fprintln(r.w, label.Sprint("   Why:     ")+a.Rationale)
	}
	fmt.Fprintln(r.w)
}

// JSON prints the response as indented JSON.
func (r *Renderer) JSON(resp model.Response) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// FormatPage returns the page number, or PageUnknown when the backend gave none.
func FormatPage(a model.Answer) string {
	if !a.PageKnown() {
		return PageUnknown
	}
	return strconv.Itoa(*a.Page)
}

// wrap splits s on word boundaries into lines of at most width runes.
// A single word longer than width gets a line of its own.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
