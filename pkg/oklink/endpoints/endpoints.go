// Package endpoints holds the declarative table of OKLink explorer endpoints.
//
// Every endpoint is described by its family, path, ordered query parameters
// and response record type. The table drives code generation for the typed
// family clients and the command tree of the oklink CLI.
package endpoints

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var tableYAML []byte

// Static errors for err113 compliance.
var (
	ErrInvalidTable   = errors.New("invalid endpoint table")
	ErrFamilyNotFound = errors.New("endpoint family not found")
	ErrNotFound       = errors.New("endpoint not found")
)

// Param types understood by the generator and the CLI.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeInt64  = "int64"
)

// Table is the full endpoint table.
type Table struct {
	Families []Family `yaml:"families"`
}

// Family groups endpoints served by one client type.
type Family struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"`
	Summary   string     `yaml:"summary"`
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Endpoint describes one GET call.
type Endpoint struct {
	Name     string  `yaml:"name"`
	Method   string  `yaml:"method"`
	Path     string  `yaml:"path"`
	Response string  `yaml:"response"`
	Options  string  `yaml:"options,omitempty"`
	Summary  string  `yaml:"summary"`
	Params   []Param `yaml:"params"`
}

// Param is one query parameter.
type Param struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description"`
}

// FieldName is the exported Go identifier for the parameter.
func (p Param) FieldName() string {
	if p.Name == "" {
		return ""
	}

	return strings.ToUpper(p.Name[:1]) + p.Name[1:]
}

// Required returns the required params in table order.
func (e Endpoint) Required() []Param {
	var params []Param

	for _, p := range e.Params {
		if p.Required {
			params = append(params, p)
		}
	}

	return params
}

// Optional returns the optional params in table order.
func (e Endpoint) Optional() []Param {
	var params []Param

	for _, p := range e.Params {
		if !p.Required {
			params = append(params, p)
		}
	}

	return params
}

// Load parses and validates the embedded table.
func Load() (*Table, error) {
	return Parse(tableYAML)
}

// Parse parses and validates a table document.
func Parse(data []byte) (*Table, error) {
	var table Table

	err := yaml.Unmarshal(data, &table)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint table: %w", err)
	}

	err = table.Validate()
	if err != nil {
		return nil, err
	}

	return &table, nil
}

// Validate checks the structural rules the generator and CLI rely on.
func (t *Table) Validate() error {
	families := make(map[string]bool)
	paths := make(map[string]string)

	for _, family := range t.Families {
		if family.Name == "" || family.Type == "" {
			return fmt.Errorf("%w: family needs name and type", ErrInvalidTable)
		}

		if families[family.Name] {
			return fmt.Errorf("%w: duplicate family %q", ErrInvalidTable, family.Name)
		}

		families[family.Name] = true
		names := make(map[string]bool)

		for _, endpoint := range family.Endpoints {
			err := validateEndpoint(family, endpoint)
			if err != nil {
				return err
			}

			if names[endpoint.Name] {
				return fmt.Errorf("%w: duplicate endpoint %s/%s", ErrInvalidTable, family.Name, endpoint.Name)
			}

			names[endpoint.Name] = true

			if other, ok := paths[endpoint.Path]; ok {
				return fmt.Errorf("%w: path %s used by %s and %s/%s", ErrInvalidTable, endpoint.Path, other, family.Name, endpoint.Name)
			}

			paths[endpoint.Path] = family.Name + "/" + endpoint.Name
		}
	}

	return nil
}

func validateEndpoint(family Family, endpoint Endpoint) error {
	id := family.Name + "/" + endpoint.Name

	if endpoint.Name == "" || endpoint.Method == "" || endpoint.Response == "" {
		return fmt.Errorf("%w: %s needs name, method and response", ErrInvalidTable, id)
	}

	if !strings.HasPrefix(endpoint.Path, "/") {
		return fmt.Errorf("%w: %s path %q must start with /", ErrInvalidTable, id, endpoint.Path)
	}

	if len(endpoint.Optional()) > 0 && endpoint.Options == "" {
		return fmt.Errorf("%w: %s has optional params but no options type", ErrInvalidTable, id)
	}

	seen := make(map[string]bool)

	for _, param := range endpoint.Params {
		if param.Name == "" {
			return fmt.Errorf("%w: %s has a param without name", ErrInvalidTable, id)
		}

		if seen[param.Name] {
			return fmt.Errorf("%w: %s repeats param %q", ErrInvalidTable, id, param.Name)
		}

		seen[param.Name] = true

		switch param.Type {
		case TypeString, TypeInt, TypeInt64:
		default:
			return fmt.Errorf("%w: %s param %q has unknown type %q", ErrInvalidTable, id, param.Name, param.Type)
		}
	}

	return nil
}

// Family returns the family with the given name.
func (t *Table) Family(name string) (*Family, error) {
	for i := range t.Families {
		if t.Families[i].Name == name {
			return &t.Families[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrFamilyNotFound, name)
}

// Lookup returns the endpoint registered under family/name.
func (t *Table) Lookup(family, name string) (*Endpoint, error) {
	f, err := t.Family(family)
	if err != nil {
		return nil, err
	}

	for i := range f.Endpoints {
		if f.Endpoints[i].Name == name {
			return &f.Endpoints[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, family, name)
}

// Count returns the number of endpoints in the table.
func (t *Table) Count() int {
	count := 0
	for _, f := range t.Families {
		count += len(f.Endpoints)
	}

	return count
}
