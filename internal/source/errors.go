// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import "fmt"

// NetworkError reports a failed fetch: a transport error, a timeout, or a
// non-2xx status from the provider. It aborts the run; there are no retries.
type NetworkError struct {
	Source string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("source %s: fetch failed: %v", e.Source, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a structurally unreadable response document. Individual
// malformed entries never produce a ParseError; parsers skip those and count
// them instead.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("source %s: unreadable response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
