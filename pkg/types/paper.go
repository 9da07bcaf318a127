// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperfetch pipeline.
package types

// Author is one paper author together with the affiliation strings the
// source reported for them.
type Author struct {
	// Name is the author's display name (e.g. "Jane Q. Researcher").
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the author's affiliations in source order.
	// Empty when the source carries no affiliation data.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Paper is the normalized record for one retrieved paper. Every source
// produces this shape; the writer serializes one CSV row per Paper.
type Paper struct {
	// ID is the canonical identifier from the source (PMID, arXiv ID, DOI, or URL).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Link is the URL a reader follows to reach the paper. A record with an
	// empty Link or Title is dropped before writing.
	Link string `json:"link" yaml:"link"`

	// Published is the publication date as reported by the source, normalized
	// to "2006 Jan 2" precision where available (e.g. "2023 Feb 15", "2023").
	// PubMed dates are often partial, so this stays a string rather than a
	// time.Time.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// Source names the source implementation that produced the record
	// (e.g. "pubmed", "arxiv").
	Source string `json:"source" yaml:"source"`

	// NonAcademicAuthors lists authors with at least one non-academic
	// affiliation. Filled by affiliation.Annotate.
	NonAcademicAuthors []string `json:"non_academic_authors,omitempty" yaml:"non_academic_authors,omitempty"`

	// CompanyAffiliations lists distinct non-academic affiliation strings in
	// first-seen order. Filled by affiliation.Annotate.
	CompanyAffiliations []string `json:"company_affiliations,omitempty" yaml:"company_affiliations,omitempty"`

	// CorrespondingEmail holds every email address found in the record's
	// affiliation strings, joined with "; ". Filled by affiliation.Annotate.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// AuthorNames returns the author display names in source order.
func (p Paper) AuthorNames() []string {
	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		names[i] = a.Name
	}
	return names
}
