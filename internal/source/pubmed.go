// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// E-utilities endpoints. Package variables so tests can point them at a test server.
var (
	pubmedSearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	pubmedFetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// emptyPubmedSet stands in for the efetch document when esearch matches
// nothing; efetch cannot be called with an empty ID list.
var emptyPubmedSet = []byte("<PubmedArticleSet></PubmedArticleSet>")

// PubMed retrieves articles from the NCBI E-utilities API: an esearch call
// resolves the query to PMIDs, then an efetch call returns the article XML.
// The XML carries per-author affiliations, which downstream affiliation
// analysis depends on.
type PubMed struct {
	Client httpclient.Client
}

func (p *PubMed) Name() string { return "pubmed" }

// Fetch resolves the query to PMIDs and returns the efetch XML for them.
func (p *PubMed) Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]byte, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(cfg.MaxResults))
	params.Set("retmode", "json")
	if cfg.NCBIAPIKey != "" {
		params.Set("api_key", cfg.NCBIAPIKey)
	}

	body, err := get(ctx, p.Client, p.Name(), pubmedSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var sr pubmedSearchResult
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &ParseError{Source: p.Name(), Err: fmt.Errorf("esearch response: %w", err)}
	}
	if len(sr.Result.IDList) == 0 {
		return emptyPubmedSet, nil
	}

	params = url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(sr.Result.IDList, ","))
	params.Set("retmode", "xml")
	if cfg.NCBIAPIKey != "" {
		params.Set("api_key", cfg.NCBIAPIKey)
	}
	return get(ctx, p.Client, p.Name(), pubmedFetchBase+"?"+params.Encode(), nil)
}

// Parse extracts one record per PubmedArticle. Articles without a PMID are
// skipped; everything else is kept and validated downstream.
func (p *PubMed) Parse(raw []byte) ([]types.Paper, int, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(raw, &set); err != nil {
		return nil, 0, &ParseError{Source: p.Name(), Err: err}
	}

	var papers []types.Paper
	skipped := 0
	for _, art := range set.Articles {
		pmid := strings.TrimSpace(art.PMID)
		if pmid == "" {
			skipped++
			continue
		}

		paper := types.Paper{
			ID:        pmid,
			Title:     strings.TrimSpace(art.Title),
			Link:      "https://pubmed.ncbi.nlm.nih.gov/" + pmid + "/",
			Published: art.PubDate.format(),
			Source:    p.Name(),
		}
		for _, a := range art.Authors {
			name := a.fullName()
			if name == "" {
				continue
			}
			paper.Authors = append(paper.Authors, types.Author{
				Name:         name,
				Affiliations: a.Affiliations,
			})
		}
		papers = append(papers, paper)
	}
	return papers, skipped, nil
}

// pubmedSearchResult is the esearch JSON envelope.
type pubmedSearchResult struct {
	Result struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// pubmedArticleSet mirrors the efetch XML.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string         `xml:"MedlineCitation>PMID"`
	Title   string         `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate pubmedDate     `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type pubmedDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

// format renders "2023 Feb 15" when the full date is present, the year alone
// otherwise, and the free-form MedlineDate when there is no Year element.
func (d pubmedDate) format() string {
	if d.Year == "" {
		return strings.TrimSpace(d.MedlineDate)
	}
	if d.Month != "" && d.Day != "" {
		return d.Year + " " + d.Month + " " + d.Day
	}
	return d.Year
}

type pubmedAuthor struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}

// fullName prefers "ForeName LastName", falls back to the last name alone,
// then to a collective (consortium) name.
func (a pubmedAuthor) fullName() string {
	last := strings.TrimSpace(a.LastName)
	fore := strings.TrimSpace(a.ForeName)
	switch {
	case last != "" && fore != "":
		return fore + " " + last
	case last != "":
		return last
	default:
		return strings.TrimSpace(a.CollectiveName)
	}
}
