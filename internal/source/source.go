// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source defines the pluggable clients that retrieve paper listings
// from external providers. A source fetches one raw document for a query and
// parses that document into normalized records; the two steps are separate so
// the pipeline can dump raw responses in debug mode and tests can parse
// canned documents.
package source

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// Source is one paper provider. Fetch performs the provider's network round
// trips for a query and returns the raw result document, failing with a
// *NetworkError when the provider is unreachable or answers non-2xx. Parse
// turns the raw document into records, skipping malformed entries
// individually and reporting how many it skipped; it fails with a
// *ParseError only when the document as a whole is unreadable.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, cfg types.FetchConfig) ([]byte, error)
	Parse(raw []byte) ([]types.Paper, int, error)
}

// registry maps a source name to its constructor.
var registry = map[string]func(client httpclient.Client) Source{
	"pubmed":   func(c httpclient.Client) Source { return &PubMed{Client: c} },
	"arxiv":    func(c httpclient.Client) Source { return &Arxiv{Client: c} },
	"openalex": func(c httpclient.Client) Source { return &OpenAlex{Client: c} },
	"scholar":  func(c httpclient.Client) Source { return &Scholar{Client: c} },
}

// New returns the source registered under name, wired to the given HTTP client.
func New(name string, client httpclient.Client) (Source, error) {
	build, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown source %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(client), nil
}

// Names lists the registered source names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// get performs one GET through the shared client and maps transport failures
// and non-2xx statuses to *NetworkError.
func get(ctx context.Context, client httpclient.Client, name, url string, headers map[string]string) ([]byte, error) {
	resp, err := client.Get(ctx, url, headers)
	if err != nil {
		return nil, &NetworkError{Source: name, Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &NetworkError{Source: name, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}
	return resp.Body(), nil
}
