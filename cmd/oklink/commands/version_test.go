//nolint:testpackage // Need access to internal helpers
package commands

import (
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	resetViper(t)

	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")

	viper.Set("output", "json")

	out, err = executeCommand(t, "", "version")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, map[string]string{"version": "1.2.3", "commit": "abc123", "built": "2026-01-01"}, info)
}
