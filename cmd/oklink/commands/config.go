package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/okclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	BaseURL  string   `json:"base_url,omitempty"  yaml:"base_url,omitempty"`
	Keys     []string `json:"keys,omitempty"      yaml:"keys,omitempty"`
	Output   string   `json:"output,omitempty"    yaml:"output,omitempty"`
	Timeout  string   `json:"timeout,omitempty"   yaml:"timeout,omitempty"`
	RetryMax int      `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage OKLink CLI configuration including the access key pool and request settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigRemoveKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged. Keys are masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Keys = maskKeys(config.Keys)

			out := cmd.OutOrStdout()

			switch viper.GetString("output") {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(config)
			case constants.FormatYAML:
				return yaml.NewEncoder(out).Encode(config)
			default:
				return displayConfigTable(out, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Keys: base_url, output, timeout, retry_max. Use "config set-key" for access keys.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // KEY VALUE
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := readConfigFile(configFilePath())
			if err != nil {
				return err
			}

			err = setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file. Unsetting keys clears the whole pool.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, err := readConfigFile(configFilePath())
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "set-key [KEY]",
		Short: "Add an access key to the pool",
		Long: `Add an access key to the configured pool.

Without an argument the key is read from stdin, without echo when stdin is a
terminal. Every request picks one key of the pool at random.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string

			if len(args) == 1 {
				key = args[0]
			} else {
				var err error

				key, err = readKey(cmd)
				if err != nil {
					return err
				}
			}

			key = strings.TrimSpace(key)
			if key == "" {
				return constants.ErrNoKeyProvided
			}

			config, err := readConfigFile(configFilePath())
			if err != nil {
				return err
			}

			if replace {
				config.Keys = nil
			}

			out := cmd.OutOrStdout()

			if slices.Contains(config.Keys, key) {
				_, _ = fmt.Fprintf(out, "Key %s is already configured\n", maskKey(key))

				return nil
			}

			config.Keys = append(config.Keys, key)

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(out, "Added key %s (%d configured)\n", maskKey(key), len(config.Keys))

			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace the pool instead of adding to it")

	return cmd
}

func newConfigRemoveKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-key KEY_OR_SUFFIX",
		Short: "Remove an access key from the pool",
		Long:  "Remove the access key equal to, or ending with, the given value. The suffix is what \"config show\" displays.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile(configFilePath())
			if err != nil {
				return err
			}

			kept, removed := removeKeys(config.Keys, args[0])
			if removed == 0 {
				return fmt.Errorf("%w: %s", constants.ErrKeyNotFound, maskKey(args[0]))
			}

			config.Keys = kept

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d key(s), %d remaining\n", removed, len(kept))

			return nil
		},
	}
}

// loadConfig returns the effective configuration as resolved by viper.
func loadConfig() *Config {
	timeout := ""
	if d := viper.GetDuration("timeout"); d > 0 {
		timeout = d.String()
	}

	return &Config{
		BaseURL:  viper.GetString("base_url"),
		Keys:     resolveKeys(),
		Output:   viper.GetString("output"),
		Timeout:  timeout,
		RetryMax: viper.GetInt("retry_max"),
	}
}

// resolveKeys prefers --key / OKLINK_KEY over the keys stored in the config file.
func resolveKeys() []string {
	if raw := viper.GetString("key"); raw != "" {
		return splitKeys(raw)
	}

	return viper.GetStringSlice("keys")
}

func splitKeys(raw string) []string {
	var keys []string

	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "base_url":
		normalized, err := okclient.NormalizeBaseURL(value)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}

		config.BaseURL = normalized
	case "output":
		err := validateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w for timeout: %q, expected a positive value such as 10s", constants.ErrInvalidDuration, value)
		}

		config.Timeout = d.String()
	case "retry_max":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w for retry_max: %s", constants.ErrInvalidIntegerFlag, value)
		}

		config.RetryMax = n
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "base_url":
		config.BaseURL = ""
	case "output":
		config.Output = ""
	case "timeout":
		config.Timeout = ""
	case "retry_max":
		config.RetryMax = 0
	case "keys":
		config.Keys = nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func removeKeys(keys []string, match string) ([]string, int) {
	var kept []string

	suffix := strings.TrimPrefix(match, constants.MaskedSecret)

	for _, key := range keys {
		if key == match || (suffix != "" && strings.HasSuffix(key, suffix)) {
			continue
		}

		kept = append(kept, key)
	}

	return kept, len(keys) - len(kept)
}

func readKey(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec // file descriptors fit in int
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Access key: ")

		key, err := term.ReadPassword(int(file.Fd())) //nolint:gosec // file descriptors fit in int

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read access key: %w", err)
		}

		return string(key), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read access key: %w", err)
	}

	return line, nil
}

func maskKey(key string) string {
	if len(key) <= constants.VisibleKeySuffix*2 {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + key[len(key)-constants.VisibleKeySuffix:]
}

func maskKeys(keys []string) []string {
	masked := make([]string, 0, len(keys))
	for _, key := range keys {
		masked = append(masked, maskKey(key))
	}

	return masked
}

func displayConfigTable(out io.Writer, config *Config) error {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL + " (default)"
	}

	keys := constants.NotAvailable
	if len(config.Keys) > 0 {
		keys = strings.Join(config.Keys, ", ")
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = constants.NotAvailable
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	_ = table.Append([]string{"Config File", configFile})
	_ = table.Append([]string{"Base URL", baseURL})
	_ = table.Append([]string{"Keys", keys})
	_ = table.Append([]string{"Output", config.Output})
	_ = table.Append([]string{"Timeout", config.Timeout})
	_ = table.Append([]string{"Retry Max", strconv.Itoa(config.RetryMax)})

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// configFilePath returns the file settings are written to.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	if flag := viper.GetString("config"); flag != "" {
		return flag
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType)
}

// readConfigFile reads only the file, so flags and environment overrides are
// never written back. A missing file yields an empty configuration.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from --config or the home directory
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
