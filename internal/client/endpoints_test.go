package client

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/fivetwenty-io/oklink/pkg/oklink/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func familyClient(c *Client, family string) any {
	switch family {
	case "blockchain":
		return c.Blockchain()
	case "block":
		return c.Block()
	case "address":
		return c.Address()
	case "transaction":
		return c.Transaction()
	case "token":
		return c.Token()
	}

	return nil
}

func sampleArg(t *testing.T, param endpoints.Param) reflect.Value {
	t.Helper()

	switch param.Type {
	case endpoints.TypeString:
		return reflect.ValueOf("v-" + param.Name)
	case endpoints.TypeInt:
		return reflect.ValueOf(7)
	case endpoints.TypeInt64:
		return reflect.ValueOf(int64(42))
	}

	t.Fatalf("unknown param type %q", param.Type)

	return reflect.Value{}
}

// Every table entry must resolve to a method on its family client that sends
// exactly its path and required params.
func TestEndpointTableMatchesFamilyClients(t *testing.T) {
	t.Parallel()

	table, err := endpoints.Load()
	require.NoError(t, err)

	for _, family := range table.Families {
		for _, endpoint := range family.Endpoints {
			t.Run(family.Name+"/"+endpoint.Name, func(t *testing.T) {
				t.Parallel()

				upstream := newFakeUpstream(t, http.StatusOK, `{"code":"0","msg":"","data":[]}`)
				client := NewTestClient(t, upstream.URL, "k")

				target := familyClient(client, family.Name)
				require.NotNil(t, target, "no client for family %s", family.Name)

				method := reflect.ValueOf(target).MethodByName(endpoint.Method)
				require.True(t, method.IsValid(), "%sClient has no method %s", family.Type, endpoint.Method)

				args := []reflect.Value{reflect.ValueOf(context.Background())}
				for _, param := range endpoint.Required() {
					args = append(args, sampleArg(t, param))
				}

				methodType := method.Type()
				if endpoint.Options != "" {
					args = append(args, reflect.Zero(methodType.In(methodType.NumIn()-1)))
				}

				require.Equal(t, methodType.NumIn(), len(args), "argument count of %s", endpoint.Method)

				out := method.Call(args)
				require.Len(t, out, 2)
				require.True(t, out[1].IsNil(), "unexpected error: %v", out[1].Interface())

				request := upstream.last(t)
				assert.Equal(t, endpoint.Path, request.Path)
				assert.Len(t, request.Query, len(endpoint.Required()))

				for _, param := range endpoint.Required() {
					assert.NotEmpty(t, request.Query.Get(param.Name), "missing %s", param.Name)
				}
			})
		}
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBlockchainClient(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[[]oklink.BlockchainSummary]{
		{
			Name: "summary of all chains",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.BlockchainSummary], error) {
				return c.Blockchain().GetSummary(ctx, nil)
			},
			Body:          `{"code":"0","msg":"","data":[{"chainShortName":"ETH","lastHeight":"1"},{"chainShortName":"BTC","lastHeight":"2"}]}`,
			ExpectedPath:  "/api/v5/explorer/blockchain/summary",
			ExpectedQuery: "",
			Check: func(t *testing.T, chains []oklink.BlockchainSummary) {
				t.Helper()
				require.Len(t, chains, 2)
				assert.Equal(t, "BTC", chains[1].ChainShortName)
			},
		},
		{
			Name: "summary of one chain",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.BlockchainSummary], error) {
				return c.Blockchain().GetSummary(ctx, &oklink.BlockchainSummaryOptions{ChainShortName: "ETH"})
			},
			Body:          `{"code":"0","msg":"","data":[{"chainShortName":"ETH","lastHeight":"1"}]}`,
			ExpectedPath:  "/api/v5/explorer/blockchain/summary",
			ExpectedQuery: "chainShortName=ETH",
		},
	})

	RunGetTests(t, []TestGetOperation[[]oklink.BlockchainHashrate]{
		{
			Name: "hashrate",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.BlockchainHashrate], error) {
				return c.Blockchain().GetHashrate(ctx, "BTC")
			},
			Body:          `{"code":"0","msg":"","data":[{"chainShortName":"BTC","hashRate":"1.2E20","hashRateChange24h":"-0.02"}]}`,
			ExpectedPath:  "/api/v5/explorer/blockchain/hashes",
			ExpectedQuery: "chainShortName=BTC",
			Check: func(t *testing.T, rates []oklink.BlockchainHashrate) {
				t.Helper()
				require.Len(t, rates, 1)
				assert.Equal(t, "-0.02", rates[0].HashRateChange24h)
			},
		},
	})
}

func TestBlockClient(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[[]oklink.BlockList]{
		{
			Name: "block list with options",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.BlockList], error) {
				return c.Block().GetBlockList(ctx, "ETH", &oklink.BlockListOptions{Height: 100, Limit: 2})
			},
			Body: `{"code":"0","msg":"","data":[{"page":"1","limit":"2","totalPage":"50","chainShortName":"ETH",` +
				`"blockList":[{"hash":"0x1","height":"100"},{"hash":"0x2","height":"99"}]}]}`,
			ExpectedPath:  "/api/v5/explorer/block/block-list",
			ExpectedQuery: "chainShortName=ETH&height=100&limit=2",
			Check: func(t *testing.T, lists []oklink.BlockList) {
				t.Helper()
				require.Len(t, lists, 1)
				assert.Equal(t, "50", lists[0].TotalPage)
				require.Len(t, lists[0].BlockList, 2)
				assert.Equal(t, "99", lists[0].BlockList[1].Height)
			},
		},
	})

	RunGetTests(t, []TestGetOperation[[]oklink.BlockTransactionListMulti]{
		{
			Name: "transactions over a block range",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.BlockTransactionListMulti], error) {
				return c.Block().GetTransactionListMulti(ctx, "ETH", 10, 12, nil)
			},
			Body:          `{"code":"0","msg":"","data":[{"page":"1","limit":"20","totalPage":"1","transactionList":[{"txId":"0xabc","height":"11"}]}]}`,
			ExpectedPath:  "/api/v5/explorer/block/transaction-list-multi",
			ExpectedQuery: "chainShortName=ETH&endBlockHeight=12&startBlockHeight=10",
			Check: func(t *testing.T, lists []oklink.BlockTransactionListMulti) {
				t.Helper()
				require.Len(t, lists, 1)
				require.Len(t, lists[0].TransactionList, 1)
				assert.Equal(t, "0xabc", lists[0].TransactionList[0].TxID)
			},
		},
	})
}

func TestAddressClient(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[[]oklink.AddressTokenBalance]{
		{
			Name: "token balance",
			Call: func(ctx context.Context, c *Client) (*oklink.Result[[]oklink.AddressTokenBalance], error) {
				return c.Address().GetTokenBalance(ctx, "ETH", "0xabc", "token_20", &oklink.TokenBalanceOptions{Page: 2})
			},
			Body:          `{"code":"0","msg":"","data":[{"page":"2","limit":"20","totalPage":"3","tokenList":[]}]}`,
			ExpectedPath:  "/api/v5/explorer/address/token-balance",
			ExpectedQuery: "address=0xabc&chainShortName=ETH&page=2&protocolType=token_20",
		},
	})
}

func TestFamilyResultsCarrySchema(t *testing.T) {
	t.Parallel()

	t.Run("conforming records", func(t *testing.T) {
		t.Parallel()

		upstream := newFakeUpstream(t, http.StatusOK, `{"code":"0","msg":"","data":[{"chainShortName":"ETH"}]}`)
		client := NewTestClient(t, upstream.URL)

		result, err := client.Blockchain().GetInfo(context.Background(), "ETH")
		require.NoError(t, err)

		valid, checked := result.IsValid()
		assert.True(t, checked)
		assert.True(t, valid)
	})

	t.Run("record missing a required field", func(t *testing.T) {
		t.Parallel()

		upstream := newFakeUpstream(t, http.StatusOK, `{"code":"0","msg":"","data":[{"symbol":"ETH"}]}`)
		client := NewTestClient(t, upstream.URL)

		result, err := client.Blockchain().GetInfo(context.Background(), "ETH")
		require.NoError(t, err)

		valid, checked := result.IsValid()
		assert.True(t, checked)
		assert.False(t, valid)

		schemaErr := &oklink.SchemaError{}
		assert.ErrorAs(t, result.Validate(), &schemaErr)
	})
}

func TestFamilyDomainFailure(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t, http.StatusOK, `{"code":"50011","msg":"Rate limit reached","data":{"unexpected":"shape"}}`)
	client := NewTestClient(t, upstream.URL)

	result, err := client.Transaction().GetTransactionFills(context.Background(), "ETH", "0xabc")
	require.NoError(t, err)
	assert.False(t, result.IsOk())
	assert.Nil(t, result.Data())

	_, err = result.GetOrThrow()
	require.EqualError(t, err, "Rate limit reached")
	assert.True(t, oklink.IsRateLimited(err))
}

func TestFamilyDataMismatchIsTransportError(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(t, http.StatusOK, `{"code":"0","msg":"","data":{"not":"a list"}}`)
	client := NewTestClient(t, upstream.URL)

	result, err := client.Token().GetTokenList(context.Background(), "ETH", nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, oklink.IsTransportError(err))
}
