package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", Source))
	require.NoError(t, err)

	return data
}

// interfaceMethods maps each interface declared in src to its method names.
func interfaceMethods(t *testing.T, src []byte) map[string][]string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "api.go", src, parser.ParseComments)
	require.NoError(t, err)

	methods := map[string][]string{}

	ast.Inspect(file, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}

		iface, ok := typeSpec.Type.(*ast.InterfaceType)
		if !ok {
			return true
		}

		for _, field := range iface.Methods.List {
			for _, name := range field.Names {
				methods[typeSpec.Name.Name] = append(methods[typeSpec.Name.Name], name.Name)
			}
		}

		return false
	})

	return methods
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	data := readTable(t)

	table, err := endpoints.Parse(data)
	require.NoError(t, err)

	api, impl, err := Generate(data)
	require.NoError(t, err)

	assert.Contains(t, string(api), "// Code generated by oklink-gen from "+Source+". DO NOT EDIT.")
	assert.Contains(t, string(impl), "// Code generated by oklink-gen from "+Source+". DO NOT EDIT.")

	methods := interfaceMethods(t, api)

	for _, family := range table.Families {
		declared := methods[family.Type+"Client"]
		require.NotNil(t, declared, "missing interface %sClient", family.Type)
		assert.Len(t, declared, len(family.Endpoints))

		for _, endpoint := range family.Endpoints {
			assert.Contains(t, declared, endpoint.Method)
			assert.Contains(t, string(impl), `"`+endpoint.Path+`"`)
			assert.Contains(t, string(impl), "send[[]oklink."+endpoint.Response+"]")

			if endpoint.Options != "" {
				assert.Contains(t, string(api), "func (o *"+endpoint.Options+") Params() Params")
			}
		}
	}

	_, err = parser.ParseFile(token.NewFileSet(), "impl.go", impl, 0)
	require.NoError(t, err)
}

func TestGenerate_InvalidTable(t *testing.T) {
	t.Parallel()

	_, _, err := Generate([]byte("families:\n  - name: x\n"))
	require.ErrorIs(t, err, endpoints.ErrInvalidTable)

	_, _, err = Generate([]byte("families: ["))
	require.Error(t, err)
}

func TestMethodArgs(t *testing.T) {
	t.Parallel()

	endpoint := endpoints.Endpoint{
		Options: "BlockListOptions",
		Params: []endpoints.Param{
			{Name: "chainShortName", Type: endpoints.TypeString, Required: true},
			{Name: "limit", Type: endpoints.TypeInt},
			{Name: "height", Type: endpoints.TypeInt64, Required: true},
		},
	}

	assert.Equal(t, "ctx context.Context, chainShortName string, height int64, opts *BlockListOptions", methodArgs(endpoint, ""))
	assert.Equal(t, "ctx context.Context, chainShortName string, height int64, opts *oklink.BlockListOptions", methodArgs(endpoint, "oklink."))
	assert.Equal(t, "ctx context.Context", methodArgs(endpoints.Endpoint{}, ""))
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tablePath := filepath.Join(dir, "endpoints.yaml")
	require.NoError(t, os.WriteFile(tablePath, readTable(t), 0o600))

	apiPath := filepath.Join(dir, "api_gen.go")
	clientPath := filepath.Join(dir, "client_gen.go")

	require.NoError(t, run(tablePath, apiPath, clientPath))

	for _, path := range []string{apiPath, clientPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.Error(t, run(filepath.Join(dir, "absent.yaml"), apiPath, clientPath))
}
