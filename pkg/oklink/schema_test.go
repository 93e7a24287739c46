package oklink_test

import (
	"testing"

	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructSchema(t *testing.T) {
	t.Parallel()

	schema := oklink.StructSchema()

	tests := []struct {
		name    string
		payload any
		wantErr string
	}{
		{name: "valid list", payload: []oklink.BlockFill{{ChainShortName: "ETH", Hash: "0x1", Height: "1"}}},
		{name: "empty list", payload: []oklink.BlockFill{}},
		{name: "valid struct", payload: oklink.BlockHeightByTime{Height: "1"}},
		{name: "second record invalid", payload: []oklink.BlockFill{
			{ChainShortName: "ETH", Hash: "0x1", Height: "1"},
			{ChainShortName: "ETH", Height: "2"},
		}, wantErr: "record 1"},
		{name: "invalid struct", payload: oklink.BlockCountDown{}, wantErr: "CountDownBlockHeight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := schema.Validate(tt.payload)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTagSchema(t *testing.T) {
	t.Parallel()

	nonEmpty := oklink.TagSchema("required,min=1")

	require.NoError(t, nonEmpty.Validate([]int{1}))
	require.Error(t, nonEmpty.Validate([]int{}))

	result := oklink.NewResult("0", "", []oklink.BlockchainSummary{}, oklink.WithSchema(nonEmpty))
	valid, checked := result.IsValid()
	assert.True(t, checked)
	assert.False(t, valid)
}
