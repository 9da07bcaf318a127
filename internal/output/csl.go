package output

import (
	"io"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperfetch/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	URL    string    `yaml:"URL,omitempty"`
	DOI    string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes papers as a CSL-YAML list to w.
func FormatCSL(papers []types.Paper, w io.Writer) error {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a Paper to a CSLItem.
func toCSLItem(p types.Paper) CSLItem {
	item := CSLItem{
		ID:     p.ID,
		Type:   "article",
		Title:  p.Title,
		URL:    p.Link,
		Issued: issuedDate(p.Published),
	}

	for _, a := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(a.Name))
	}

	// Set DOI if the identifier looks like one.
	if strings.HasPrefix(p.ID, "10.") {
		item.DOI = p.ID
	}

	return item
}

// issuedDate recovers CSL date-parts from a display date. Full dates yield
// year, month, and day; partial dates such as "2022" or a Medline range like
// "1998 Dec-1999 Jan" yield the year alone.
func issuedDate(published string) *CSLDate {
	fields := strings.Fields(published)
	if len(fields) == 0 {
		return nil
	}
	if t, err := time.Parse("2006 Jan 2", published); err == nil {
		return &CSLDate{DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}}}
	}
	if year, err := strconv.Atoi(fields[0]); err == nil {
		return &CSLDate{DateParts: [][]int{{year}}}
	}
	return nil
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
