package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what a fake upstream saw for one call.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Header   http.Header
}

// fakeUpstream serves a fixed body and records every request.
type fakeUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeUpstream(t *testing.T, status int, body string) *fakeUpstream {
	t.Helper()

	upstream := &fakeUpstream{}
	upstream.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		upstream.mu.Lock()
		upstream.requests = append(upstream.requests, recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Query:    request.URL.Query(),
			Header:   request.Header.Clone(),
		})
		upstream.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	return upstream
}

func (u *fakeUpstream) last(t *testing.T) recordedRequest {
	t.Helper()

	u.mu.Lock()
	defer u.mu.Unlock()

	require.NotEmpty(t, u.requests, "upstream received no request")

	return u.requests[len(u.requests)-1]
}

func (u *fakeUpstream) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.requests)
}

// NewTestClient creates a new test client for the given base URL and keys.
func NewTestClient(t *testing.T, baseURL string, keys ...string) *Client {
	t.Helper()

	client, err := New(&oklink.Config{BaseURL: baseURL, Keys: keys})
	require.NoError(t, err)

	return client
}

// TestGetOperation represents one family method call against a fake upstream.
type TestGetOperation[TResponse any] struct {
	Name          string
	Call          func(context.Context, *Client) (*oklink.Result[TResponse], error)
	Body          string
	ExpectedPath  string
	ExpectedQuery string
	Check         func(*testing.T, TResponse)
}

// RunGetTests runs a series of family method tests.
func RunGetTests[TResponse any](t *testing.T, tests []TestGetOperation[TResponse]) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			upstream := newFakeUpstream(t, http.StatusOK, testCase.Body)
			client := NewTestClient(t, upstream.URL, "test-key")

			result, err := testCase.Call(context.Background(), client)
			require.NoError(t, err)
			require.NotNil(t, result)

			request := upstream.last(t)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, testCase.ExpectedPath, request.Path)
			assert.Equal(t, testCase.ExpectedQuery, request.RawQuery)

			data, err := result.GetOrThrow()
			require.NoError(t, err)

			if testCase.Check != nil {
				testCase.Check(t, data)
			}
		})
	}
}
