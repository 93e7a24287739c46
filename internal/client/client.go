package client

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/internal/http"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
)

// Client implements the oklink.Client interface.
type Client struct {
	httpClient *http.Client
	keys       []string
	baseURL    string

	// Family clients
	blockchain  oklink.BlockchainClient
	block       oklink.BlockClient
	address     oklink.AddressClient
	transaction oklink.TransactionClient
	token       oklink.TokenClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *oklink.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.KeySelector != nil {
		httpOpts = append(httpOpts, http.WithKeySelector(config.KeySelector))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new OKLink client. An empty BaseURL selects the production
// host; no other normalization happens here.
func New(config *oklink.Config) (*Client, error) {
	if config == nil {
		return nil, oklink.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	keys := append([]string(nil), config.Keys...)
	httpClient := http.NewClient(baseURL, keys, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		keys:       keys,
		baseURL:    httpClient.BaseURL(),
	}

	client.initializeFamilyClients()

	return client, nil
}

// Send implements oklink.Client.Send.
func (c *Client) Send(ctx context.Context, path string, params oklink.Params) (*oklink.Result[json.RawMessage], error) {
	return send[json.RawMessage](ctx, c.httpClient, path, params)
}

// Keys implements oklink.Client.Keys.
func (c *Client) Keys() []string {
	return append([]string(nil), c.keys...)
}

// BaseURL implements oklink.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Family client accessors

// Blockchain implements oklink.Client.Blockchain.
func (c *Client) Blockchain() oklink.BlockchainClient {
	return c.blockchain
}

// Block implements oklink.Client.Block.
func (c *Client) Block() oklink.BlockClient {
	return c.block
}

// Address implements oklink.Client.Address.
func (c *Client) Address() oklink.AddressClient {
	return c.address
}

// Transaction implements oklink.Client.Transaction.
func (c *Client) Transaction() oklink.TransactionClient {
	return c.transaction
}

// Token implements oklink.Client.Token.
func (c *Client) Token() oklink.TokenClient {
	return c.token
}

// initializeFamilyClients initializes the family clients over the shared
// dispatcher.
func (c *Client) initializeFamilyClients() {
	c.blockchain = NewBlockchainClient(c.httpClient)
	c.block = NewBlockClient(c.httpClient)
	c.address = NewAddressClient(c.httpClient)
	c.transaction = NewTransactionClient(c.httpClient)
	c.token = NewTokenClient(c.httpClient)
}

// loggerAdapter adapts oklink.Logger to http.Logger.
type loggerAdapter struct {
	logger oklink.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
