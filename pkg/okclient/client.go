package okclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/oklink/internal/client"
	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
)

// New creates a new OKLink client. The config is not modified.
func New(config *oklink.Config) (oklink.Client, error) {
	if config == nil {
		return nil, oklink.ErrConfigRequired
	}

	baseURL, err := NormalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.BaseURL = baseURL

	if normalized.HTTPTimeout == 0 {
		normalized.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithKeys creates a client for the production host using the given
// credential pool.
func NewWithKeys(keys ...string) (oklink.Client, error) {
	return New(&oklink.Config{Keys: keys})
}

// NewWithBaseURL creates a client for a custom host.
func NewWithBaseURL(baseURL string, keys ...string) (oklink.Client, error) {
	return New(&oklink.Config{BaseURL: baseURL, Keys: keys})
}

// NormalizeBaseURL trims a trailing slash and adds "https://" when no scheme
// is present. An empty value selects the production host.
func NormalizeBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", oklink.ErrInvalidBaseURL, err)
	}

	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: %q has no host", oklink.ErrInvalidBaseURL, baseURL)
	}

	return baseURL, nil
}
