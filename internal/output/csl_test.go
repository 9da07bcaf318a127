// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/paperfetch/pkg/types"
)

func TestToCSLItemDOI(t *testing.T) {
	p := types.Paper{
		ID:        "10.7717/peerj.4375",
		Title:     "The state of OA",
		Authors:   []types.Author{{Name: "Heather Piwowar"}},
		Link:      "https://doi.org/10.7717/peerj.4375",
		Published: "2018 Feb 13",
		Source:    "openalex",
	}

	item := toCSLItem(p)

	if item.Type != "article" {
		t.Errorf("Type = %q, want %q", item.Type, "article")
	}
	if item.DOI != "10.7717/peerj.4375" {
		t.Errorf("DOI = %q", item.DOI)
	}
	if item.URL != "https://doi.org/10.7717/peerj.4375" {
		t.Errorf("URL = %q", item.URL)
	}
	if len(item.Author) != 1 {
		t.Fatalf("len(Author) = %d, want 1", len(item.Author))
	}
	if item.Author[0].Given != "Heather" || item.Author[0].Family != "Piwowar" {
		t.Errorf("Author[0] = %+v", item.Author[0])
	}
	want := [][]int{{2018, 2, 13}}
	if item.Issued == nil || !reflect.DeepEqual(item.Issued.DateParts, want) {
		t.Errorf("Issued = %+v, want date-parts %v", item.Issued, want)
	}
}

func TestToCSLItemNonDOIIdentifier(t *testing.T) {
	p := types.Paper{
		ID:        "1706.03762",
		Title:     "Attention Is All You Need",
		Link:      "https://arxiv.org/abs/1706.03762",
		Published: "2017 Jun 12",
		Source:    "arxiv",
	}

	item := toCSLItem(p)

	if item.DOI != "" {
		t.Errorf("DOI should be empty for non-DOI identifiers, got %q", item.DOI)
	}
	if item.ID != "1706.03762" {
		t.Errorf("ID = %q", item.ID)
	}
}

func TestIssuedDate(t *testing.T) {
	tests := []struct {
		name      string
		published string
		want      [][]int
	}{
		{"full date", "2023 Feb 15", [][]int{{2023, 2, 15}}},
		{"year only", "2022", [][]int{{2022}}},
		{"medline range keeps the first year", "1998 Dec-1999 Jan", [][]int{{1998}}},
		{"empty", "", nil},
		{"unparseable", "n.d.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := issuedDate(tt.published)
			if tt.want == nil {
				if got != nil {
					t.Errorf("issuedDate(%q) = %+v, want nil", tt.published, got)
				}
				return
			}
			if got == nil || !reflect.DeepEqual(got.DateParts, tt.want) {
				t.Errorf("issuedDate(%q) = %+v, want %v", tt.published, got, tt.want)
			}
		})
	}
}

func TestParseAuthorName(t *testing.T) {
	tests := []struct {
		name string
		want CSLName
	}{
		{"Ashish Vaswani", CSLName{Given: "Ashish", Family: "Vaswani"}},
		{"Juan Carlos Ortiz", CSLName{Given: "Juan Carlos", Family: "Ortiz"}},
		{"Aristotle", CSLName{Literal: "Aristotle"}},
		{"  ", CSLName{}},
	}
	for _, tt := range tests {
		if got := parseAuthorName(tt.name); got != tt.want {
			t.Errorf("parseAuthorName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFormatCSL(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCSL(samplePapers(), &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}
	s := buf.String()

	if !strings.Contains(s, "type: article") {
		t.Error("CSL output should contain type: article")
	}
	if !strings.Contains(s, "DOI: 10.7717/peerj.4375") {
		t.Error("CSL output should carry the DOI for DOI-identified papers")
	}
	if strings.Count(s, "DOI:") != 1 {
		t.Errorf("expected exactly 1 DOI field, got %d", strings.Count(s, "DOI:"))
	}
	if !strings.Contains(s, "family: Alvarez") {
		t.Error("CSL output should split author names into family parts")
	}
	if !strings.Contains(s, "date-parts") {
		t.Error("CSL output should carry issued date-parts")
	}
}
