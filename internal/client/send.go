package client

import (
	"context"

	"github.com/fivetwenty-io/oklink/internal/http"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
)

// recordSchema validates the `validate` tags of every decoded record. It is
// attached to family client results, never run implicitly.
var recordSchema = oklink.WithSchema(oklink.StructSchema())

// send issues one GET for path and decodes the body into a Result.
// Transport failures are returned as the *oklink.TransportError produced by
// the HTTP layer, without further wrapping.
func send[T any](ctx context.Context, httpClient *http.Client, path string, params oklink.Params, opts ...oklink.ResultOption) (*oklink.Result[T], error) {
	if path == "" {
		return nil, oklink.ErrPathRequired
	}

	resp, err := httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, err //nolint:wrapcheck // transport errors are surfaced as-is
	}

	result, err := oklink.DecodeResult[T](resp.Body, opts...)
	if err != nil {
		return nil, &oklink.TransportError{
			Method:     resp.Method,
			URL:        resp.URL,
			StatusCode: resp.StatusCode,
			Body:       http.Snippet(resp.Body),
			Err:        err,
		}
	}

	return result, nil
}
