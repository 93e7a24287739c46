//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Key        string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Key:        os.Getenv("OKLINK_KEY"),
		BaseURL:    os.Getenv("OKLINK_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("OKLINK_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the oklink binary.
func getBinaryPath() string {
	if path := os.Getenv("OKLINK_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../oklink",
		"./oklink",
		"../oklink",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "oklink"
}

// SkipIfMissingKey skips the test when no access key is configured.
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.Key == "" {
		t.Skip("OKLINK_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("oklink binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the oklink binary against the live API.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an oklink command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...) //nolint:gosec // test binary
	cmd.Env = append(os.Environ(), "OKLINK_KEY="+runner.config.Key)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "OKLINK_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
