package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
)

// Source is the table path named in the generated headers.
const Source = "pkg/oklink/endpoints/endpoints.yaml"

var funcs = template.FuncMap{
	"lower": lowerFirst,
	"args":  methodArgs,
}

var apiTemplate = template.Must(template.New("api").Funcs(funcs).Parse(`// Code generated by oklink-gen from {{.Source}}. DO NOT EDIT.

package oklink

import "context"
{{range $f := .Table.Families}}
// {{$f.Type}}Client defines operations for {{lower $f.Summary}}.
type {{$f.Type}}Client interface {
{{- range $e := $f.Endpoints}}
	// {{$e.Method}} fetches {{lower $e.Summary}}.
	// GET {{$e.Path}}
	{{$e.Method}}({{args $e ""}}) (*Result[[]{{$e.Response}}], error)
{{- end}}
}
{{end}}
{{- range $f := .Table.Families}}{{range $e := $f.Endpoints}}{{if $e.Options}}
// {{$e.Options}} holds the optional parameters of {{$f.Type}}Client.{{$e.Method}}.
// Zero fields are not sent.
type {{$e.Options}} struct {
{{- range $e.Optional}}
	// {{.FieldName}}: {{.Description}}.
	{{.FieldName}} {{.Type}}
{{- end}}
}

// Params returns the query parameters set on o. A nil o yields none.
func (o *{{$e.Options}}) Params() Params {
	params := Params{}
	if o == nil {
		return params
	}
{{range $e.Optional}}
	params.SetOptional("{{.Name}}", o.{{.FieldName}})
{{- end}}

	return params
}
{{end}}{{end}}{{end}}`))

var clientTemplate = template.Must(template.New("client").Funcs(funcs).Parse(`// Code generated by oklink-gen from {{.Source}}. DO NOT EDIT.

package client

import (
	"context"

	"github.com/fivetwenty-io/oklink/internal/http"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
)
{{range $f := .Table.Families}}
// {{$f.Type}}Client implements oklink.{{$f.Type}}Client.
type {{$f.Type}}Client struct {
	httpClient *http.Client
}

// New{{$f.Type}}Client creates a new {{$f.Name}} client.
func New{{$f.Type}}Client(httpClient *http.Client) *{{$f.Type}}Client {
	return &{{$f.Type}}Client{
		httpClient: httpClient,
	}
}
{{range $e := $f.Endpoints}}
// {{$e.Method}} implements oklink.{{$f.Type}}Client.{{$e.Method}}.
func (c *{{$f.Type}}Client) {{$e.Method}}({{args $e "oklink."}}) (*oklink.Result[[]oklink.{{$e.Response}}], error) {
	params := {{if $e.Options}}opts.Params(){{else}}oklink.Params{}{{end}}
{{- range $e.Required}}
	params.Set("{{.Name}}", {{.Name}})
{{- end}}

	return send[[]oklink.{{$e.Response}}](ctx, c.httpClient, "{{$e.Path}}", params, recordSchema)
}
{{end}}{{end}}`))

type templateData struct {
	Source string
	Table  *endpoints.Table
}

// Generate renders the interface file for pkg/oklink and the implementation
// file for internal/client from a table document.
func Generate(tableYAML []byte) (api, impl []byte, err error) {
	table, err := endpoints.Parse(tableYAML)
	if err != nil {
		return nil, nil, fmt.Errorf("loading endpoint table: %w", err)
	}

	data := templateData{Source: Source, Table: table}

	api, err = render(apiTemplate, data)
	if err != nil {
		return nil, nil, err
	}

	impl, err = render(clientTemplate, data)
	if err != nil {
		return nil, nil, err
	}

	return api, impl, nil
}

func render(tmpl *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s output: %w", tmpl.Name(), err)
	}

	return src, nil
}

// methodArgs renders the parameter list shared by interface and
// implementation: ctx, required params in table order, then the options
// struct qualified by pkg.
func methodArgs(e endpoints.Endpoint, pkg string) string {
	args := []string{"ctx context.Context"}

	for _, p := range e.Required() {
		args = append(args, p.Name+" "+p.Type)
	}

	if e.Options != "" {
		args = append(args, "opts *"+pkg+e.Options)
	}

	return strings.Join(args, ", ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
