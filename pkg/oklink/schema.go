package oklink

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Schema checks a decoded payload.
type Schema interface {
	Validate(v any) error
}

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc func(v any) error

// Validate implements Schema.
func (f SchemaFunc) Validate(v any) error {
	return f(v)
}

// SchemaError wraps the reason a payload did not conform to its schema.
type SchemaError struct {
	Err error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("payload does not match schema: %v", e.Err)
}

// Unwrap returns the validator error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// TagSchema validates the whole payload against a validator tag, for
// example "required,min=1" to demand a non-empty record list.
func TagSchema(tag string) Schema {
	return SchemaFunc(func(v any) error {
		return payloadValidator().Var(v, tag)
	})
}

// StructSchema validates every record of a list payload (or a single struct
// payload) against the `validate` tags declared on the record type.
func StructSchema() Schema {
	return SchemaFunc(func(v any) error {
		value := reflect.ValueOf(v)
		if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
			return payloadValidator().Struct(v)
		}

		for i := range value.Len() {
			err := payloadValidator().Struct(value.Index(i).Interface())
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}

		return nil
	})
}
