// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// openAlexSearchBase is the OpenAlex Works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openAlexSearchBase = "https://api.openalex.org/works"

// OpenAlex queries the OpenAlex works API. Authorships carry institution
// names and raw affiliation strings, so affiliation analysis works on these
// records.
type OpenAlex struct {
	Client httpclient.Client
}

func (s *OpenAlex) Name() string { return "openalex" }

// Fetch returns the works JSON for the query, relevance-sorted by the API.
func (s *OpenAlex) Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]byte, error) {
	perPage := cfg.MaxResults
	if perPage > 200 {
		perPage = 200
	}

	params := url.Values{
		"search":   {query},
		"per_page": {strconv.Itoa(perPage)},
		"page":     {"1"},
	}
	if cfg.OpenAlexMailto != "" {
		params.Set("mailto", cfg.OpenAlexMailto)
	}

	return get(ctx, s.Client, s.Name(), openAlexSearchBase+"?"+params.Encode(), nil)
}

// Parse extracts one record per work. Works carrying neither a DOI nor an
// OpenAlex ID are skipped.
func (s *OpenAlex) Parse(raw []byte) ([]types.Paper, int, error) {
	var resp openAlexResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, 0, &ParseError{Source: s.Name(), Err: err}
	}

	var papers []types.Paper
	skipped := 0
	for _, work := range resp.Results {
		id, link := openAlexIdentity(work)
		if id == "" {
			skipped++
			continue
		}

		paper := types.Paper{
			ID:     id,
			Title:  strings.TrimSpace(work.Title),
			Link:   link,
			Source: s.Name(),
		}
		for _, as := range work.Authorships {
			if as.Author.DisplayName == "" {
				continue
			}
			author := types.Author{Name: as.Author.DisplayName}
			if len(as.RawAffiliationStrings) > 0 {
				author.Affiliations = as.RawAffiliationStrings
			} else {
				for _, inst := range as.Institutions {
					if inst.DisplayName != "" {
						author.Affiliations = append(author.Affiliations, inst.DisplayName)
					}
				}
			}
			paper.Authors = append(paper.Authors, author)
		}

		if work.PublicationDate != "" {
			if t, err := time.Parse("2006-01-02", work.PublicationDate); err == nil {
				paper.Published = t.Format("2006 Jan 2")
			}
		} else if work.PublicationYear > 0 {
			paper.Published = strconv.Itoa(work.PublicationYear)
		}

		papers = append(papers, paper)
	}
	return papers, skipped, nil
}

// openAlexIdentity picks the record identifier and link. OpenAlex is
// DOI-centric: prefer the bare DOI with its https://doi.org/ URL, fall back
// to the OpenAlex work URL.
func openAlexIdentity(work openAlexWork) (id, link string) {
	if work.DOI != "" {
		return strings.TrimPrefix(work.DOI, "https://doi.org/"), work.DOI
	}
	if work.ID != "" {
		return strings.TrimPrefix(work.ID, "https://openalex.org/"), work.ID
	}
	return "", ""
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	DOI             string               `json:"doi"`
	PublicationDate string               `json:"publication_date"`
	PublicationYear int                  `json:"publication_year"`
	Authorships     []openAlexAuthorship `json:"authorships"`
}

type openAlexAuthorship struct {
	Author                openAlexAuthor        `json:"author"`
	Institutions          []openAlexInstitution `json:"institutions"`
	RawAffiliationStrings []string              `json:"raw_affiliation_strings"`
}

type openAlexAuthor struct {
	DisplayName string `json:"display_name"`
}

type openAlexInstitution struct {
	DisplayName string `json:"display_name"`
}
