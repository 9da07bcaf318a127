// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies author affiliations and extracts contact
// emails from them. The heuristics are keyword-based: an affiliation that
// mentions an academic institution is academic, unless a company keyword
// appears, which marks it as industry regardless.
package affiliation

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paperfetch/pkg/types"
)

// academicKeywords mark an affiliation as an academic institution.
var academicKeywords = []string{
	"university", "institute", "college", "school", "department", "academy",
	"faculty", "centre for", "research center", "laboratory",
}

// companyKeywords override academicKeywords: "Pfizer Inc. Research
// Laboratory" is industry even though it mentions a laboratory.
var companyKeywords = []string{
	"pharma", "biotech", "inc.", "ltd.", "llc", "corporation", "gmbh",
}

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// IsNonAcademic reports whether an affiliation string looks like a company
// rather than an academic institution.
func IsNonAcademic(affiliation string) bool {
	lower := strings.ToLower(affiliation)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// ExtractEmails returns every email address found in text, in order.
func ExtractEmails(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// Annotate fills the derived fields on each paper: the authors holding a
// non-academic affiliation, the distinct non-academic affiliation strings in
// first-seen order, and every email found in affiliation text joined with
// "; ".
func Annotate(papers []types.Paper) {
	for i := range papers {
		annotateOne(&papers[i])
	}
}

func annotateOne(p *types.Paper) {
	var nonAcademic, companies, emails []string
	seen := make(map[string]bool)

	for _, author := range p.Authors {
		industry := false
		for _, affil := range author.Affiliations {
			if affil == "" {
				continue
			}
			emails = append(emails, ExtractEmails(affil)...)
			if IsNonAcademic(affil) {
				industry = true
				if !seen[affil] {
					seen[affil] = true
					companies = append(companies, affil)
				}
			}
		}
		if industry && author.Name != "" {
			nonAcademic = append(nonAcademic, author.Name)
		}
	}

	p.NonAcademicAuthors = nonAcademic
	p.CompanyAffiliations = companies
	p.CorrespondingEmail = strings.Join(emails, "; ")
}
