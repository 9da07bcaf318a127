package types

import "time"

// HTTPConfig holds shared HTTP settings used by every source client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperfetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds the settings a source needs for one run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of papers requested from the source (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// NCBIAPIKey is an optional E-utilities API key for higher rate limits.
	NCBIAPIKey string `json:"ncbi_api_key,omitempty" yaml:"ncbi_api_key,omitempty"`

	// OpenAlexMailto is a contact email sent with OpenAlex requests for
	// polite-pool access.
	OpenAlexMailto string `json:"openalex_mailto,omitempty" yaml:"openalex_mailto,omitempty"`
}
