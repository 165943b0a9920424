package terminal

import (
	"io"
	"strings"
	"testing"
)

func TestClearSequence(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		width     int
		wantLines int
	}{
		{name: "empty input", length: 0, width: 80, wantLines: 2},
		{name: "single line", length: 40, width: 80, wantLines: 2},
		{name: "exact width", length: 80, width: 80, wantLines: 2},
		{name: "wrapped", length: 81, width: 80, wantLines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := clearSequence(tt.length, tt.width)
			if got := strings.Count(seq, "\x1b[2K"); got != tt.wantLines {
				t.Errorf("clearSequence() clears %d lines, want %d", got, tt.wantLines)
			}
			if got := strings.Count(seq, "\x1b[1A"); got != tt.wantLines-1 {
				t.Errorf("clearSequence() moves up %d lines, want %d", got, tt.wantLines-1)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "newline terminated", in: "  secret \nrest", want: "secret"},
		{name: "no newline", in: "token", want: "token"},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tt.in))
			if tt.wantErr {
				if err != io.EOF {
					t.Errorf("readLine() error = %v, want EOF", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("readLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
