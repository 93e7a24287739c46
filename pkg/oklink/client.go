package oklink

import (
	"context"
	"encoding/json"
)

// Client is the main interface for interacting with the OKLink explorer API.
type Client interface {
	// Send issues one GET for path with params as the query string and
	// returns the undecoded payload. It is the dispatcher every family
	// method goes through.
	Send(ctx context.Context, path string, params Params) (*Result[json.RawMessage], error)

	// Keys returns a copy of the credential pool.
	Keys() []string
	// BaseURL returns the normalized host requests are sent to.
	BaseURL() string

	Blockchain() BlockchainClient
	Block() BlockClient
	Address() AddressClient
	Transaction() TransactionClient
	Token() TokenClient
}
