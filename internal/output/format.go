// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperfetch/pkg/types"
)

// FormatTable writes papers as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-12s  %s\n",
		"#", "Title", "Authors", "Published", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 108))

	for i, p := range papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-12s  %s\n",
			i+1, title, formatAuthors(p.Authors), p.Published, p.Source)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

func formatAuthors(authors []types.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0].Name, 20)
	default:
		return truncate(authors[0].Name, 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
