// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders fetched paper records: the CSV report written to
// disk and the table, JSON, and CSL formats written to a terminal.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pdiddy/paperfetch/pkg/types"
)

// csvHeader is the fixed first row of every CSV report. Column order is part
// of the file contract; downstream spreadsheets key on it.
var csvHeader = []string{
	"id",
	"title",
	"authors",
	"link",
	"published",
	"source",
	"non_academic_authors",
	"company_affiliations",
	"corresponding_email",
}

// WriteCSV writes papers to path as a CSV report, creating the file or
// truncating a previous run's copy. The header row is always written, so a
// run with zero records still produces a well-formed file.
func WriteCSV(path string, papers []types.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, p := range papers {
		if err := w.Write(csvRow(p)); err != nil {
			f.Close()
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

// ReadCSV reads a report written by WriteCSV back into records. Author
// affiliations do not survive the trip; the report carries only the derived
// affiliation columns.
func ReadCSV(path string) ([]types.Paper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	if len(rows) == 0 || !slices.Equal(rows[0], csvHeader) {
		return nil, fmt.Errorf("%s is not a paperfetch report", path)
	}

	papers := make([]types.Paper, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := types.Paper{
			ID:                  row[0],
			Title:               row[1],
			Link:                row[3],
			Published:           row[4],
			Source:              row[5],
			NonAcademicAuthors:  splitJoined(row[6]),
			CompanyAffiliations: splitJoined(row[7]),
			CorrespondingEmail:  row[8],
		}
		for _, name := range splitJoined(row[2]) {
			p.Authors = append(p.Authors, types.Author{Name: name})
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// csvRow flattens one paper into CSV cells. Multi-value fields are joined
// with "; "; absent values stay empty rather than carrying a placeholder.
func csvRow(p types.Paper) []string {
	return []string{
		p.ID,
		p.Title,
		strings.Join(p.AuthorNames(), "; "),
		p.Link,
		p.Published,
		p.Source,
		strings.Join(p.NonAcademicAuthors, "; "),
		strings.Join(p.CompanyAffiliations, "; "),
		p.CorrespondingEmail,
	}
}

// splitJoined undoes the "; " join, mapping an empty cell to nil.
func splitJoined(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, "; ")
}
