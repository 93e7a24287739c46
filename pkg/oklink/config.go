package oklink

import (
	"math/rand/v2"
	"net/http"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// KeySelector picks the access key for one call from the credential pool.
// It returns false when no key should be sent.
type KeySelector func(keys []string) (string, bool)

// RandomKeySelector picks a key uniformly at random. It returns false for an
// empty pool.
func RandomKeySelector(keys []string) (string, bool) {
	if len(keys) == 0 {
		return "", false
	}

	return keys[rand.IntN(len(keys))], true
}

// Config represents client configuration for building an oklink.Client.
//
// # Credentials
//
// Keys is the credential pool. For every call the KeySelector (default
// RandomKeySelector) picks one key, which is sent in the Ok-Access-Key
// header. With an empty pool requests go out unauthenticated.
//
// # Timeouts and retries
//
// Per-request deadlines should be set through the context passed to client
// methods; HTTPTimeout bounds every request. The client issues exactly one
// request per call unless RetryMax is set, in which case connection errors,
// 429 and 5xx responses are retried with exponential backoff.
type Config struct {
	// BaseURL: API host. Defaults to https://www.oklink.com. okclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string
	// Keys: access keys; copied at construction.
	Keys []string
	// KeySelector: per-call key choice. Defaults to RandomKeySelector.
	KeySelector KeySelector

	// HTTPTimeout: timeout applied to every request. Defaults to 30s.
	HTTPTimeout time.Duration
	// HTTPClient: optional base client; its Transport and Timeout are reused.
	HTTPClient *http.Client
	// RetryMax: retries after the first attempt. 0 disables retrying.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
