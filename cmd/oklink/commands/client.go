package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/oklink/internal/logging"
	"github.com/fivetwenty-io/oklink/pkg/okclient"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/spf13/viper"
)

// createClient builds a client from the merged flag, environment and file settings.
func createClient() (oklink.Client, error) {
	config := &oklink.Config{
		BaseURL:     viper.GetString("base_url"),
		Keys:        resolveKeys(),
		HTTPTimeout: viper.GetDuration("timeout"),
		RetryMax:    viper.GetInt("retry_max"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.NewZapLogger("debug", os.Stderr)
	}

	client, err := okclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
