package endpoints_test

import (
	"strings"
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	table, err := endpoints.Load()
	require.NoError(t, err)

	assert.Equal(t, 24, table.Count())

	var names []string
	for _, family := range table.Families {
		names = append(names, family.Name)
	}

	assert.Equal(t, []string{"blockchain", "block", "address", "transaction", "token"}, names)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	table, err := endpoints.Load()
	require.NoError(t, err)

	endpoint, err := table.Lookup("block", "block-fills")
	require.NoError(t, err)
	assert.Equal(t, "/api/v5/explorer/block/block-fills", endpoint.Path)
	assert.Equal(t, "GetBlockFills", endpoint.Method)
	require.Len(t, endpoint.Required(), 2)
	assert.Empty(t, endpoint.Optional())

	_, err = table.Lookup("block", "nope")
	require.ErrorIs(t, err, endpoints.ErrNotFound)

	_, err = table.Lookup("nope", "block-fills")
	require.ErrorIs(t, err, endpoints.ErrFamilyNotFound)
}

func TestRequiredAndOptionalKeepTableOrder(t *testing.T) {
	t.Parallel()

	endpoint := endpoints.Endpoint{Params: []endpoints.Param{
		{Name: "a", Required: true},
		{Name: "b"},
		{Name: "c", Required: true},
		{Name: "d"},
	}}

	var required, optional []string
	for _, p := range endpoint.Required() {
		required = append(required, p.Name)
	}

	for _, p := range endpoint.Optional() {
		optional = append(optional, p.Name)
	}

	assert.Equal(t, []string{"a", "c"}, required)
	assert.Equal(t, []string{"b", "d"}, optional)
}

func TestParamFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ChainShortName", endpoints.Param{Name: "chainShortName"}.FieldName())
	assert.Empty(t, endpoints.Param{}.FieldName())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	const endpoint = `
      - name: list
        method: GetList
        path: /api/list
        response: Item
        summary: list`

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "family without type",
			doc:  "families:\n  - name: x\n",
			want: "needs name and type",
		},
		{
			name: "duplicate family",
			doc:  "families:\n  - {name: x, type: X}\n  - {name: x, type: Y}\n",
			want: "duplicate family",
		},
		{
			name: "relative path",
			doc:  "families:\n  - name: x\n    type: X\n    endpoints:" + strings.Replace(endpoint, "/api/list", "api/list", 1) + "\n",
			want: "must start with /",
		},
		{
			name: "duplicate endpoint",
			doc:  "families:\n  - name: x\n    type: X\n    endpoints:" + endpoint + endpoint + "\n",
			want: "duplicate endpoint x/list",
		},
		{
			name: "optional params without options type",
			doc: "families:\n  - name: x\n    type: X\n    endpoints:" + endpoint +
				"\n        params:\n          - {name: limit, type: int}\n",
			want: "no options type",
		},
		{
			name: "unknown param type",
			doc: "families:\n  - name: x\n    type: X\n    endpoints:" + endpoint +
				"\n        params:\n          - {name: limit, type: float, required: true}\n",
			want: "unknown type",
		},
		{
			name: "repeated param",
			doc: "families:\n  - name: x\n    type: X\n    endpoints:" + endpoint +
				"\n        params:\n          - {name: a, type: int, required: true}\n          - {name: a, type: int, required: true}\n",
			want: "repeats param",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := endpoints.Parse([]byte(tt.doc))
			require.ErrorIs(t, err, endpoints.ErrInvalidTable)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := endpoints.Parse([]byte("families: ["))
	require.Error(t, err)
	assert.NotErrorIs(t, err, endpoints.ErrInvalidTable)
}
