package oklink

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Params maps query parameter names to values. A nil value, or a nil
// pointer, means the parameter is absent and it is left out of the query.
type Params map[string]any

// Set stores value under name and returns p for chaining.
func (p Params) Set(name string, value any) Params {
	p[name] = value

	return p
}

// SetOptional stores value only when it is not the zero value of its type.
func (p Params) SetOptional(name string, value any) Params {
	if value == nil || reflect.ValueOf(value).IsZero() {
		return p
	}

	p[name] = value

	return p
}

// ToValues converts p into url.Values, skipping absent parameters.
func (p Params) ToValues() url.Values {
	values := url.Values{}

	for name, value := range p {
		text, ok := formatParam(value)
		if !ok {
			continue
		}

		values.Set(name, text)
	}

	return values
}

// Encode returns the URL-encoded query string, sorted by name.
func (p Params) Encode() string {
	return p.ToValues().Encode()
}

func formatParam(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	case fmt.Stringer:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}

		return typed.String(), true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}

		return formatParam(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	default:
		return fmt.Sprint(value), true
	}
}
