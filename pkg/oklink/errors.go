package oklink

import (
	"errors"
	"fmt"
)

// Result code reported by the upstream API on success.
const CodeOK = "0"

// Common upstream error codes.
// https://www.oklink.com/docs/en/#support-errors-and-api-status
const (
	CodeEmptyBody          = "50000"
	CodeServiceUnavailable = "50001"
	CodeJSONSyntax         = "50002"
	CodeEndpointTimeout    = "50004"
	CodeTooManyRequests    = "50011"
	CodeSystemBusy         = "50013"
	CodeParamRequired      = "50014"
	CodeSystemError        = "50026"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrPathRequired     = errors.New("endpoint path is required")
	ErrNoSchema         = errors.New("no schema attached")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrInvalidBaseURL   = errors.New("invalid base URL")
)

// TransportError reports a failure below the result envelope: the request
// could not be sent, the server answered with a non-2xx status, or the body
// was not a decodable envelope.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DomainError is a non-zero code in an otherwise successfully transported
// response. Error returns the upstream message unchanged.
type DomainError struct {
	Code string
	Msg  string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Msg
}

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsCode checks if err is a DomainError carrying the given upstream code.
func IsCode(err error, code string) bool {
	domainErr := &DomainError{}
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}

	return false
}

// IsServiceUnavailable checks if the upstream reported a temporary outage.
func IsServiceUnavailable(err error) bool {
	return IsCode(err, CodeServiceUnavailable) || IsCode(err, CodeSystemBusy)
}

// IsRateLimited checks if the upstream rejected the call for request frequency.
func IsRateLimited(err error) bool {
	return IsCode(err, CodeTooManyRequests)
}
