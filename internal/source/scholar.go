// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// scholarBase is the Google Scholar results page. Declared as a var so tests
// can substitute an httptest server.
var scholarBase = "https://scholar.google.com/scholar"

var scholarYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Scholar scrapes the Google Scholar results page. Scholar exposes no API,
// so this source is the page-scraping strategy behind the Source interface.
// Bylines carry abbreviated author names and no affiliations.
type Scholar struct {
	Client httpclient.Client
}

func (s *Scholar) Name() string { return "scholar" }

// Fetch returns the results page HTML for the query.
func (s *Scholar) Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]byte, error) {
	params := url.Values{
		"q":  {query},
		"hl": {"en"},
	}
	if cfg.MaxResults > 0 {
		params.Set("num", strconv.Itoa(cfg.MaxResults))
	}
	return get(ctx, s.Client, s.Name(), scholarBase+"?"+params.Encode(), nil)
}

// Parse extracts one record per result block. Citation-only entries, which
// have no title link, are skipped.
func (s *Scholar) Parse(raw []byte) ([]types.Paper, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, &ParseError{Source: s.Name(), Err: err}
	}

	var papers []types.Paper
	skipped := 0
	doc.Find("div.gs_ri").Each(func(_ int, block *goquery.Selection) {
		titleLink := block.Find("h3.gs_rt a").First()
		title := strings.TrimSpace(titleLink.Text())
		href, ok := titleLink.Attr("href")
		if title == "" || !ok || href == "" {
			skipped++
			return
		}

		paper := types.Paper{
			// Scholar has no stable identifier; the landing URL serves as one.
			ID:     href,
			Title:  title,
			Link:   href,
			Source: s.Name(),
		}

		byline := strings.TrimSpace(block.Find("div.gs_a").First().Text())
		paper.Authors, paper.Published = parseScholarByline(byline)

		papers = append(papers, paper)
	})
	return papers, skipped, nil
}

// parseScholarByline splits the "A Author, B Author - Venue, 2021 - host"
// line into author names and a publication year. Scholar truncates long
// author lists with an ellipsis, which is dropped.
func parseScholarByline(byline string) ([]types.Author, string) {
	names := byline
	year := ""
	if idx := strings.Index(byline, " - "); idx >= 0 {
		names = byline[:idx]
		year = scholarYearRe.FindString(byline[idx+3:])
	}

	var authors []types.Author
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		name = strings.Trim(name, "…")
		if name == "" {
			continue
		}
		authors = append(authors, types.Author{Name: name})
	}
	return authors, year
}
