// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClientGet(t *testing.T) {
	var gotUA, gotExtra string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotExtra = r.Header.Get("X-Probe")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := NewRestyClient(5*time.Second, "paperfetch/test")
	resp, err := c.Get(context.Background(), ts.URL, map[string]string{"X-Probe": "yes"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, `{"ok":true}`, string(resp.Body()))
	assert.Equal(t, "paperfetch/test", gotUA)
	assert.Equal(t, "yes", gotExtra)
}

func TestRestyClientGetNonOKIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewRestyClient(5*time.Second, "")
	resp, err := c.Get(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
}

func TestRestyClientGetConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := NewRestyClient(time.Second, "")
	_, err := c.Get(context.Background(), ts.URL, nil)
	require.Error(t, err)
}
