// Command oklink-gen renders the typed family clients from the endpoint table.
//
// Usage (see the go:generate directive in pkg/oklink/doc.go):
//
//	oklink-gen --table endpoints/endpoints.yaml \
//		--api endpoints_gen.go \
//		--client ../../internal/client/endpoints_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		tablePath  string
		apiPath    string
		clientPath string
	)

	cmd := &cobra.Command{
		Use:           "oklink-gen",
		Short:         "Generate OKLink family clients from the endpoint table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(tablePath, apiPath, clientPath)
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "endpoints/endpoints.yaml", "endpoint table")
	cmd.Flags().StringVar(&apiPath, "api", "endpoints_gen.go", "output for interfaces and option structs")
	cmd.Flags().StringVar(&clientPath, "client", "../../internal/client/endpoints_gen.go", "output for client implementations")

	return cmd
}

func run(tablePath, apiPath, clientPath string) error {
	data, err := os.ReadFile(tablePath) //nolint:gosec // path comes from go:generate
	if err != nil {
		return fmt.Errorf("reading endpoint table: %w", err)
	}

	api, impl, err := Generate(data)
	if err != nil {
		return err
	}

	err = os.WriteFile(apiPath, api, 0o644) //nolint:gosec // generated source
	if err != nil {
		return fmt.Errorf("writing %s: %w", apiPath, err)
	}

	err = os.WriteFile(clientPath, impl, 0o644) //nolint:gosec // generated source
	if err != nil {
		return fmt.Errorf("writing %s: %w", clientPath, err)
	}

	return nil
}
