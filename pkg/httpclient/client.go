// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httpclient abstracts the HTTP transport used by paper sources so
// tests can substitute fakes without standing up a network.
package httpclient

import "context"

// Response is the minimal response surface a source needs.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client issues GET requests on behalf of a source.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
