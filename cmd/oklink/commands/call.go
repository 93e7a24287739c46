package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCallCommand creates the call command, which sends a raw request.
func NewCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call PATH [NAME=VALUE...]",
		Short: "Send a GET request to any explorer path",
		Long: `Send a GET request to an arbitrary explorer path and print the data.

Parameters are given as NAME=VALUE pairs and sent as the query string.`,
		Example: `  oklink call /api/v5/explorer/blockchain/summary chainShortName=ETH
  oklink call /api/v5/explorer/address/address-summary chainShortName=BTC address=bc1q... -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParamArgs(args[1:])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Send(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to call %s: %w", args[0], err)
			}

			return renderResult(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	}
}

// parseParamArgs turns NAME=VALUE arguments into params. A repeated name keeps the last value.
func parseParamArgs(args []string) (oklink.Params, error) {
	params := oklink.Params{}

	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParam, arg)
		}

		params.Set(name, value)
	}

	return params, nil
}
