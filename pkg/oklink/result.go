package oklink

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result wraps one OKLink response body: a status code, a diagnostic message
// and a typed payload. Code "0" is success; every other code is an upstream
// failure category. A Result is never modified after construction.
type Result[T any] struct {
	code   string
	msg    string
	data   T
	raw    json.RawMessage
	schema Schema
}

// ResultOption configures a Result at construction.
type ResultOption func(*resultOptions)

type resultOptions struct {
	schema Schema
	raw    json.RawMessage
}

// WithSchema attaches a validation schema used by Validate and IsValid.
func WithSchema(schema Schema) ResultOption {
	return func(o *resultOptions) {
		o.schema = schema
	}
}

// WithRaw keeps the undecoded data bytes alongside the payload.
func WithRaw(raw json.RawMessage) ResultOption {
	return func(o *resultOptions) {
		o.raw = raw
	}
}

// NewResult creates a Result from already decoded values.
func NewResult[T any](code, msg string, data T, opts ...ResultOption) *Result[T] {
	options := &resultOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Result[T]{
		code:   code,
		msg:    msg,
		data:   data,
		raw:    options.raw,
		schema: options.schema,
	}
}

// envelope is the upstream wire shape.
type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// DecodeResult builds a Result from a raw response body. The data member is
// decoded into T; a data value that does not fit T is an error only when the
// code reports success, otherwise it is kept raw and Data stays zero.
func DecodeResult[T any](body []byte, opts ...ResultOption) (*Result[T], error) {
	var env envelope

	err := json.Unmarshal(body, &env)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	var data T

	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		err = json.Unmarshal(env.Data, &data)
		if err != nil && env.Code == CodeOK {
			return nil, fmt.Errorf("parsing response data: %w", err)
		}
	}

	return NewResult(env.Code, env.Msg, data, append([]ResultOption{WithRaw(env.Data)}, opts...)...), nil
}

// Code returns the upstream status code.
func (r *Result[T]) Code() string {
	return r.code
}

// Msg returns the upstream diagnostic message.
func (r *Result[T]) Msg() string {
	return r.msg
}

// Data returns the payload regardless of the status code.
func (r *Result[T]) Data() T {
	return r.data
}

// Raw returns the undecoded data bytes, if the result was decoded from a body.
func (r *Result[T]) Raw() json.RawMessage {
	return r.raw
}

// IsOk reports whether the code is "0".
func (r *Result[T]) IsOk() bool {
	return r.code == CodeOK
}

// GetOrThrow returns the payload when IsOk, or a *DomainError carrying the
// upstream message.
func (r *Result[T]) GetOrThrow() (T, error) {
	if !r.IsOk() {
		var zero T

		return zero, r.Err()
	}

	return r.data, nil
}

// MustGet is like GetOrThrow but panics on a failure code.
func (r *Result[T]) MustGet() T {
	data, err := r.GetOrThrow()
	if err != nil {
		panic(err)
	}

	return data
}

// Err returns the *DomainError for a failure code, or nil.
func (r *Result[T]) Err() error {
	if r.IsOk() {
		return nil
	}

	return &DomainError{Code: r.code, Msg: r.msg}
}

// WithSchema returns a copy of r carrying schema.
func (r *Result[T]) WithSchema(schema Schema) *Result[T] {
	clone := *r
	clone.schema = schema

	return &clone
}

// Validate runs the attached schema over the payload. It returns ErrNoSchema
// when none is attached and a *SchemaError when the payload does not conform.
func (r *Result[T]) Validate() error {
	if r.schema == nil {
		return ErrNoSchema
	}

	err := r.schema.Validate(r.data)
	if err != nil {
		return &SchemaError{Err: err}
	}

	return nil
}

// IsValid reports whether the payload conforms to the attached schema.
// checked is false when there is no schema, in which case valid is false too.
func (r *Result[T]) IsValid() (valid, checked bool) {
	if r.schema == nil {
		return false, false
	}

	return r.Validate() == nil, true
}
