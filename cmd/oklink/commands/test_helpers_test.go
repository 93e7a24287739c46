//nolint:testpackage // Need access to internal helpers
package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type recordedRequest struct {
	Path  string
	Query url.Values
	Key   string
}

// upstream is an httptest explorer that answers every request with one body.
type upstream struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

func newUpstream(t *testing.T, body string) *upstream {
	t.Helper()

	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, recordedRequest{
			Path:  r.URL.Path,
			Query: r.URL.Query(),
			Key:   r.Header.Get("Ok-Access-Key"),
		})
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)

	return u
}

func (u *upstream) last(t *testing.T) recordedRequest {
	t.Helper()

	u.mu.Lock()
	defer u.mu.Unlock()

	require.NotEmpty(t, u.requests, "no request reached the upstream")

	return u.requests[len(u.requests)-1]
}

// resetViper isolates a test from global viper state.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// executeCommand runs args against a root carrying every oklink command.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	table, err := endpoints.Load()
	require.NoError(t, err)

	root := &cobra.Command{Use: "oklink", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	root.AddCommand(NewConfigCommand())
	root.AddCommand(NewCallCommand())
	root.AddCommand(NewEndpointsCommand(table))

	for _, family := range NewFamilyCommands(table) {
		root.AddCommand(family)
	}

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(bytes.NewBufferString(stdin))
	root.SetArgs(args)

	err = root.Execute()

	return out.String(), err
}
