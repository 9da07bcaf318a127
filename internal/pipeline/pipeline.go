// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one fetch from query to report. A run is a single
// pass: the query goes to one source, the raw response is parsed into
// records, records missing a title or link are dropped, author affiliations
// are annotated, and the survivors are written out. Each stage transition
// emits one log line, so a run can be reconstructed from its log alone.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperfetch/internal/affiliation"
	"github.com/pdiddy/paperfetch/internal/logger"
	"github.com/pdiddy/paperfetch/internal/output"
	"github.com/pdiddy/paperfetch/internal/source"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// Options configures one run.
type Options struct {
	// Fetch carries the HTTP and provider settings handed to the source.
	Fetch types.FetchConfig
	// OutFile is the CSV report path. Empty means no file is written and
	// the caller renders the records itself.
	OutFile string
	// DebugDir, when set, receives a dump of the raw provider response
	// before parsing.
	DebugDir string
}

// Result reports what one run produced.
type Result struct {
	// Papers are the records that survived cleaning, in provider order.
	Papers []types.Paper
	// Skipped counts provider entries the parser could not turn into
	// records.
	Skipped int
	// Dropped counts parsed records rejected for a missing title or link.
	Dropped int
}

// Run executes the fetch pipeline for query against src. It fails on an
// unreachable source, an unreadable response, or an unwritable report; no
// report file is created unless fetching and parsing both succeed.
func Run(ctx context.Context, src source.Source, query string, opts Options) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("empty query")
	}

	logger.S.Infow("fetch started", "source", src.Name(), "query", query)
	raw, err := src.Fetch(ctx, query, opts.Fetch)
	if err != nil {
		logger.S.Errorw("fetch failed", "source", src.Name(), "error", err)
		return nil, err
	}
	logger.S.Infow("fetch complete", "source", src.Name(), "bytes", len(raw))

	if opts.DebugDir != "" {
		dumpRaw(opts.DebugDir, src.Name(), raw)
	}

	papers, skipped, err := src.Parse(raw)
	if err != nil {
		logger.S.Errorw("parse failed", "source", src.Name(), "error", err)
		return nil, err
	}
	logger.S.Infow("parse complete", "source", src.Name(), "records", len(papers), "skipped", skipped)

	papers, dropped := clean(papers)
	affiliation.Annotate(papers)

	if opts.OutFile != "" {
		if err := output.WriteCSV(opts.OutFile, papers); err != nil {
			logger.S.Errorw("write failed", "path", opts.OutFile, "error", err)
			return nil, err
		}
		logger.S.Infow("write complete", "path", opts.OutFile, "records", len(papers))
	}

	return &Result{Papers: papers, Skipped: skipped, Dropped: dropped}, nil
}

// clean drops records that do not satisfy the report contract: every row
// needs a title and a link. Drops are logged per record and never abort the
// run.
func clean(papers []types.Paper) ([]types.Paper, int) {
	kept := make([]types.Paper, 0, len(papers))
	dropped := 0
	for _, p := range papers {
		if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Link) == "" {
			logger.S.Warnw("record dropped", "source", p.Source, "id", p.ID)
			dropped++
			continue
		}
		kept = append(kept, p)
	}
	return kept, dropped
}

// dumpRaw writes the provider response under dir for offline inspection.
// Dump failures are logged and swallowed; debugging aids never fail a run.
func dumpRaw(dir, name string, raw []byte) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.S.Warnw("raw dump failed", "dir", dir, "error", err)
		return
	}
	path := filepath.Join(dir, name+"-response.raw")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logger.S.Warnw("raw dump failed", "path", path, "error", err)
		return
	}
	logger.S.Debugw("raw response dumped", "path", path, "bytes", len(raw))
}
