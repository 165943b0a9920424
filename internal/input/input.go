// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package input turns operator input into a query request: it resolves the
// document reference and collects questions from flags and files.
package input

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDocument normalizes a document reference.
// http(s) and file URLs pass through unchanged. A path to an existing local file
// must name a PDF and is turned into an absolute file:// URL. Anything else is
// treated as an opaque handle the backend understands.
func ResolveDocument(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}

	if u, err := url.Parse(ref); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return ref, nil
		}
	}

	info, err := os.Stat(ref)
	if err != nil {
		// Not a local file; leave it for the backend to interpret.
		return ref, nil
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a PDF document", ref)
	}
	if !strings.EqualFold(filepath.Ext(ref), ".pdf") {
		return "", fmt.Errorf("%s is not a PDF document", ref)
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// ReadQuestions reads one question per line. Lines are trimmed; blank lines and
// lines starting with '#' are skipped. Order is preserved.
func ReadQuestions(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadQuestionsFile reads questions from path; "-" reads stdin.
func ReadQuestionsFile(path string) ([]string, error) {
	if path == "-" {
		return ReadQuestions(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadQuestions(f)
}

// MergeQuestions returns the trimmed, non-empty flag questions followed by the
// file questions.
func MergeQuestions(flagQuestions, fileQuestions []string) []string {
	out := make([]string, 0, len(flagQuestions)+len(fileQuestions))
	for _, q := range flagQuestions {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return append(out, fileQuestions...)
}
