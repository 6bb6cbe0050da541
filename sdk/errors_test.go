package sdk

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationFailedError(t *testing.T) {
	t.Parallel()

	cause := errors.New("simulation failed")

	err := NewOperationFailedError("get_owner", "CCONTRACT", cause)
	assert.Equal(t, "get_owner failed for contract CCONTRACT: simulation failed", err.Error())
	require.ErrorIs(t, err, cause)

	// Ledger reads carry no contract address.
	err = NewOperationFailedError("get_latest_ledger", "", cause)
	assert.Equal(t, "get_latest_ledger failed: simulation failed", err.Error())
}

func TestIndexerUnavailableError(t *testing.T) {
	t.Parallel()

	err := &IndexerUnavailableError{Network: "testnet"}
	assert.Equal(t, "indexer not available for network testnet", err.Error())
}

func TestQueryErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &QueryError{Query: "accessControlEvents", Err: cause}

	assert.Equal(t, "indexer query accessControlEvents failed: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestIsUnsupportedQuery(t *testing.T) {
	t.Parallel()

	unsupported := &UnsupportedQueryError{Query: "accessControlEvents", Reason: "unknown field"}
	assert.True(t, IsUnsupportedQuery(unsupported))
	assert.True(t, IsUnsupportedQuery(fmt.Errorf("looking up pending transfer: %w", unsupported)))

	assert.False(t, IsUnsupportedQuery(nil))
	assert.False(t, IsUnsupportedQuery(errors.New("transient failure")))
	assert.False(t, IsUnsupportedQuery(&QueryError{Query: "accessControlEvents", Err: errors.New("boom")}))
}
