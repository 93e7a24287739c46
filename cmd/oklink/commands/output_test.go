//nolint:testpackage // Need access to internal helpers
package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawResult(code, msg, data string) *oklink.Result[json.RawMessage] {
	return oklink.NewResult(code, msg, json.RawMessage(data))
}

func TestRenderResult(t *testing.T) {
	t.Parallel()

	t.Run("json keeps numbers exact", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := renderResult(&out, constants.FormatJSON, rawResult("0", "", `[{"fee":12345678901234567890,"hash":"0x1"}]`))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"fee":12345678901234567890,"hash":"0x1"}]`, out.String())
		assert.Contains(t, out.String(), "12345678901234567890")
	})

	t.Run("yaml numbers are not quoted", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := renderResult(&out, constants.FormatYAML, rawResult("0", "", `{"count":3,"name":"ETH","ratio":0.5}`))
		require.NoError(t, err)
		assert.Equal(t, "count: 3\nname: ETH\nratio: 0.5\n", out.String())
	})

	t.Run("table of records", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := renderResult(&out, constants.FormatTable, rawResult("0", "", `[{"hash":"0xaaa","height":"1"},{"hash":"0xbbb","extra":true}]`))
		require.NoError(t, err)

		text := out.String()
		assert.Contains(t, text, "0xaaa")
		assert.Contains(t, text, "0xbbb")
		assert.Contains(t, text, constants.NotAvailable)
	})

	t.Run("paged list is unwrapped", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		data := `[{"page":"1","totalPage":"5","blockList":[{"hash":"0xaaa","height":"10"},{"hash":"0xbbb","height":"9"}]}]`
		err := renderResult(&out, constants.FormatTable, rawResult("0", "", data))
		require.NoError(t, err)

		text := out.String()
		assert.True(t, strings.HasPrefix(text, "page: 1\ntotalPage: 5\n"), text)
		assert.Contains(t, text, "0xaaa")
		assert.Contains(t, text, "0xbbb")
		assert.NotContains(t, text, "blockList")
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, renderResult(&out, constants.FormatTable, rawResult("0", "", `[]`)))
		assert.Equal(t, "No records\n", out.String())

		out.Reset()
		require.NoError(t, renderResult(&out, constants.FormatTable, rawResult("0", "", ``)))
		assert.Equal(t, "No records\n", out.String())
	})

	t.Run("scalar data", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, renderResult(&out, constants.FormatTable, rawResult("0", "", `"19000000"`)))
		assert.Equal(t, "19000000\n", out.String())
	})

	t.Run("failure code", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := renderResult(&out, constants.FormatJSON, rawResult("50011", "Rate limit reached", `[]`))
		require.Error(t, err)
		assert.True(t, oklink.IsRateLimited(err))
		assert.Contains(t, err.Error(), "Rate limit reached")
		assert.Empty(t, out.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		err := renderResult(&bytes.Buffer{}, "xml", rawResult("0", "", `[]`))
		require.ErrorIs(t, err, constants.ErrUnsupportedOutput)
	})
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	long := `{"a":"` + strings.Repeat("x", maxCellWidth) + `"}`

	var nested any
	require.NoError(t, json.Unmarshal([]byte(long), &nested))

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "ETH", want: "ETH"},
		{name: "number", value: json.Number("1.50"), want: "1.50"},
		{name: "bool", value: true, want: "true"},
		{name: "list", value: []any{"a", "b"}, want: `["a","b"]`},
		{name: "long object is truncated", value: nested, want: long[:maxCellWidth] + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, formatCell(tt.value))
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML} {
		require.NoError(t, validateOutputFormat(format))
	}

	require.ErrorIs(t, validateOutputFormat("csv"), constants.ErrUnsupportedOutput)
}
