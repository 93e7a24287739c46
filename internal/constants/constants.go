package constants

import "time"

// Upstream API contract.
const (
	// DefaultBaseURL is the production OKLink host.
	DefaultBaseURL = "https://www.oklink.com"

	// AccessKeyHeader carries the selected access key.
	AccessKeyHeader = "Ok-Access-Key"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "oklink-go/1.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retrying is off unless a caller sets RetryMax.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP response handling.
const (
	// ErrorBodySnippetLimit bounds the body kept in transport errors.
	ErrorBodySnippetLimit = 512
)

// UI and display constants.
const (
	// NotAvailable is shown for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces access keys in output.
	MaskedSecret = "***"

	// VisibleKeySuffix is the number of trailing key characters shown.
	VisibleKeySuffix = 4
)

// Format constants.
const (
	// FormatTable is the default CLI output format.
	FormatTable = "table"

	// FormatJSON represents JSON output.
	FormatJSON = "json"

	// FormatYAML represents YAML output.
	FormatYAML = "yaml"
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".oklink"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"

	// EnvPrefix is the environment variable prefix read by the CLI.
	EnvPrefix = "OKLINK"

	// DotEnvFile is loaded before the environment is read.
	DotEnvFile = ".env"
)
