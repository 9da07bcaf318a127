package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleArxivFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v1</id>
    <title>Attention Is All
  You Need</title>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
  </entry>
  <entry>
    <id>urn:something-that-is-not-an-abs-link</id>
    <title>Feed housekeeping entry</title>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1810.04805v2</id>
    <title>BERT: Pre-training of Deep Bidirectional Transformers</title>
    <published>2018-10-11T00:00:00Z</published>
    <author><name>Jacob Devlin</name></author>
  </entry>
</feed>`

func TestArxivFetch(t *testing.T) {
	var rawQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, sampleArxivFeedXML)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	s := &Arxiv{Client: testClient()}
	raw, err := s.Fetch(context.Background(), "attention mechanisms", testCfg())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(rawQuery, "search_query=all:attention+mechanisms") {
		t.Errorf("query = %q, want all: terms joined with +", rawQuery)
	}
	if !strings.Contains(rawQuery, "max_results=5") {
		t.Errorf("query = %q, missing max_results", rawQuery)
	}
	if len(raw) == 0 {
		t.Error("Fetch returned an empty document")
	}
}

func TestArxivParse(t *testing.T) {
	s := &Arxiv{}
	papers, skipped, err := s.Parse([]byte(sampleArxivFeedXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 (entry without an abs link)", skipped)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ID != "1706.03762" {
		t.Errorf("ID = %q, want 1706.03762", p.ID)
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, wrapped whitespace should collapse", p.Title)
	}
	if p.Link != "http://arxiv.org/abs/1706.03762v1" {
		t.Errorf("Link = %q", p.Link)
	}
	if p.Published != "2017 Jun 12" {
		t.Errorf("Published = %q, want %q", p.Published, "2017 Jun 12")
	}
	if len(p.Authors) != 2 || p.Authors[0].Name != "Ashish Vaswani" {
		t.Errorf("Authors = %v", p.Authors)
	}
	if p.Source != "arxiv" {
		t.Errorf("Source = %q", p.Source)
	}
}

func TestArxivParseUnreadable(t *testing.T) {
	s := &Arxiv{}
	_, _, err := s.Parse([]byte("<feed><entry></feed>"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"http://arxiv.org/abs/1706.03762v5", "1706.03762"},
		{"http://arxiv.org/abs/2301.12345", "2301.12345"},
		{"https://arxiv.org/abs/2301.07041v2", "2301.07041"},
		{"not a url", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := extractArxivID(tt.input)
			if got != tt.want {
				t.Errorf("extractArxivID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
