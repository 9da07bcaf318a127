// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Arxiv queries the arXiv Atom API. Entries carry no affiliation data, so
// records from this source never gain affiliation annotations.
type Arxiv struct {
	Client httpclient.Client
}

func (s *Arxiv) Name() string { return "arxiv" }

// Fetch returns the Atom feed for the query, most relevant entries first.
func (s *Arxiv) Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]byte, error) {
	q := "all:" + strings.Join(strings.Fields(query), "+")
	u := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=relevance&sortOrder=descending",
		arxivAPIBase, q, cfg.MaxResults)
	return get(ctx, s.Client, s.Name(), u, nil)
}

// Parse extracts one record per feed entry. Entries whose <id> does not
// contain an arXiv identifier are skipped.
func (s *Arxiv) Parse(raw []byte) ([]types.Paper, int, error) {
	var feed arxivFeed
	if err := xml.Unmarshal(raw, &feed); err != nil {
		return nil, 0, &ParseError{Source: s.Name(), Err: err}
	}

	var papers []types.Paper
	skipped := 0
	for _, entry := range feed.Entries {
		id := extractArxivID(entry.ID)
		if id == "" {
			skipped++
			continue
		}

		paper := types.Paper{
			ID: id,
			// arXiv wraps titles across indented lines; collapse the whitespace.
			Title:  strings.Join(strings.Fields(entry.Title), " "),
			Link:   strings.TrimSpace(entry.ID),
			Source: s.Name(),
		}
		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				paper.Authors = append(paper.Authors, types.Author{Name: name})
			}
		}
		if t, err := time.Parse(time.RFC3339, entry.Published); err == nil {
			paper.Published = t.Format("2006 Jan 2")
		}
		papers = append(papers, paper)
	}
	return papers, skipped, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Title     string        `xml:"title"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return strings.TrimSpace(id)
}
