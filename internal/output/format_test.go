// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/paperfetch/pkg/types"
)

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(samplePapers(), &buf)
	s := buf.String()

	if !strings.Contains(s, "Engineered CRISPR systems for therapeutic gene editing") {
		t.Error("table does not contain the first title")
	}
	if !strings.Contains(s, "Maria Alvarez et al.") {
		t.Error("table does not abbreviate multi-author lists")
	}
	if !strings.Contains(s, "2 papers") {
		t.Error("table does not report the paper count")
	}
}

func TestFormatTableTruncatesLongTitles(t *testing.T) {
	papers := []types.Paper{{
		Title:  strings.Repeat("long title ", 10),
		Source: "arxiv",
	}}
	var buf bytes.Buffer
	FormatTable(papers, &buf)
	if !strings.Contains(buf.String(), "...") {
		t.Error("long title was not truncated")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No papers found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(samplePapers(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded []types.Paper
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len(decoded) = %d, want 2", len(decoded))
	}
	if decoded[0].ID != "36789012" {
		t.Errorf("decoded[0].ID = %q", decoded[0].ID)
	}
	if decoded[1].CorrespondingEmail != "" {
		t.Errorf("decoded[1].CorrespondingEmail = %q, want empty", decoded[1].CorrespondingEmail)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"short", 20, "short"},
		{"exactly twenty chars", 20, "exactly twenty chars"},
		{"this one is a little too long", 20, "this one is a lit..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}
