package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewFamilyCommands creates one command per endpoint family, with one
// subcommand per endpoint and one flag per query parameter.
func NewFamilyCommands(table *endpoints.Table) []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(table.Families))

	for _, family := range table.Families {
		commands = append(commands, newFamilyCommand(family))
	}

	return commands
}

func newFamilyCommand(family endpoints.Family) *cobra.Command {
	cmd := &cobra.Command{
		Use:   family.Name,
		Short: family.Summary,
		Long:  fmt.Sprintf("%s.\n\nEach subcommand calls one explorer endpoint; parameters are flags named as in the API.", family.Summary),
	}

	for _, endpoint := range family.Endpoints {
		cmd.AddCommand(newEndpointCommand(endpoint))
	}

	return cmd
}

func newEndpointCommand(endpoint endpoints.Endpoint) *cobra.Command {
	cmd := &cobra.Command{
		Use:   endpoint.Name,
		Short: endpoint.Summary,
		Long:  fmt.Sprintf("%s.\n\nGET %s", endpoint.Summary, endpoint.Path),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := collectParams(cmd, endpoint)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Send(cmd.Context(), endpoint.Path, params)
			if err != nil {
				return fmt.Errorf("failed to call %s: %w", endpoint.Path, err)
			}

			return renderResult(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	}

	for _, param := range endpoint.Params {
		usage := param.Description
		if param.Required {
			usage += " (required)"
		}

		switch param.Type {
		case endpoints.TypeInt:
			cmd.Flags().Int(param.Name, 0, usage)
		case endpoints.TypeInt64:
			cmd.Flags().Int64(param.Name, 0, usage)
		default:
			cmd.Flags().String(param.Name, "", usage)
		}

		if param.Required {
			_ = cmd.MarkFlagRequired(param.Name)
		}
	}

	return cmd
}

// collectParams reads the flags of an endpoint command. Only flags the user
// set are sent, so unset optional params are absent from the query.
func collectParams(cmd *cobra.Command, endpoint endpoints.Endpoint) (oklink.Params, error) {
	params := oklink.Params{}
	flags := cmd.Flags()

	for _, param := range endpoint.Params {
		if !flags.Changed(param.Name) {
			continue
		}

		var (
			value any
			err   error
		)

		switch param.Type {
		case endpoints.TypeInt:
			value, err = flags.GetInt(param.Name)
		case endpoints.TypeInt64:
			value, err = flags.GetInt64(param.Name)
		default:
			value, err = flags.GetString(param.Name)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read flag --%s: %w", param.Name, err)
		}

		params.Set(param.Name, value)
	}

	return params, nil
}

// EndpointInfo is one row of the endpoints listing.
type EndpointInfo struct {
	Command  string   `json:"command"  yaml:"command"`
	Path     string   `json:"path"     yaml:"path"`
	Method   string   `json:"method"   yaml:"method"`
	Response string   `json:"response" yaml:"response"`
	Required []string `json:"required" yaml:"required"`
	Optional []string `json:"optional" yaml:"optional"`
}

// NewEndpointsCommand creates the endpoints command, which lists the table.
func NewEndpointsCommand(table *endpoints.Table) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List supported explorer endpoints",
		Long:  "List every explorer endpoint with its CLI command, Go method and parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			families := table.Families

			if family != "" {
				f, err := table.Family(family)
				if err != nil {
					return err
				}

				families = []endpoints.Family{*f}
			}

			return renderEndpoints(cmd.OutOrStdout(), viper.GetString("output"), listEndpoints(families))
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list endpoints of this family")

	return cmd
}

func listEndpoints(families []endpoints.Family) []EndpointInfo {
	var infos []EndpointInfo

	for _, family := range families {
		for _, endpoint := range family.Endpoints {
			infos = append(infos, EndpointInfo{
				Command:  family.Name + " " + endpoint.Name,
				Path:     endpoint.Path,
				Method:   family.Type + "()." + endpoint.Method,
				Response: endpoint.Response,
				Required: paramNames(endpoint.Required()),
				Optional: paramNames(endpoint.Optional()),
			})
		}
	}

	return infos
}

func paramNames(params []endpoints.Param) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}

	return names
}

func renderEndpoints(out io.Writer, format string, infos []EndpointInfo) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(infos)
	case constants.FormatYAML:
		return yaml.NewEncoder(out).Encode(infos)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(out)
		table.Header("Command", "Path", "Required", "Optional")

		for _, info := range infos {
			_ = table.Append([]string{info.Command, info.Path, joinOrNA(info.Required), joinOrNA(info.Optional)})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}
