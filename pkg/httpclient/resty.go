// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts a resty.Client to the Client interface. All sources
// share one instance so the timeout and User-Agent are configured in one
// place.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient returns a RestyClient with the given timeout and User-Agent.
func NewRestyClient(timeout time.Duration, userAgent string) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return &RestyClient{client: c}
}

// Get performs an HTTP GET with the given context, URL, and extra headers.
// Non-2xx statuses are not errors here; callers inspect StatusCode.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponse{resp: resp}, nil
}

// restyResponse adapts resty.Response to the Response interface.
type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) Body() []byte    { return r.resp.Body() }
func (r *restyResponse) StatusCode() int { return r.resp.StatusCode() }
