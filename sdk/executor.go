package sdk

import "context"

// QueryExecutor issues a single read-only contract invocation and returns
// the decoded result. An absent on-chain value decodes to nil.
// Implementations own transport, retry and timeout policy.
type QueryExecutor interface {
	Execute(ctx context.Context, contractAddress, functionName string, args []any) (any, error)
}

// LedgerReader reports the chain's current ledger sequence.
type LedgerReader interface {
	LatestLedger(ctx context.Context) (uint32, error)
}
