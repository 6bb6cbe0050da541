package sdk

import (
	"context"

	"github.com/stellarkit/accessctl/types"
)

// HistoryIndexer queries the historical event index for a contract's
// access-control history. The index is optional and eventually consistent;
// implementations report unavailability rather than guessing.
type HistoryIndexer interface {
	// CheckAvailability probes the indexer once and memoizes the result for
	// the client's lifetime.
	CheckAvailability(ctx context.Context) bool

	// QueryHistory returns one page of access-control events, newest first.
	// An empty page is a valid result, not an error.
	QueryHistory(ctx context.Context, contractAddress string, filter types.HistoryFilter) (types.HistoryPage, error)

	// DiscoverRoleIDs returns the distinct role identifiers seen in the
	// contract's history, excluding the OWNER sentinel.
	DiscoverRoleIDs(ctx context.Context, contractAddress string) ([]string, error)

	// LatestGrants returns the most recent grant of role per account.
	// Accounts with no grant event are absent from the result.
	LatestGrants(ctx context.Context, contractAddress string, role types.RoleIdentifier, accounts []string) (map[string]types.GrantRecord, error)

	// PendingOwnershipTransfer returns the in-flight ownership handover, or
	// nil when none is pending.
	PendingOwnershipTransfer(ctx context.Context, contractAddress string) (*types.PendingTransfer, error)

	// PendingAdminTransfer returns the in-flight admin handover, or nil when
	// none is pending.
	PendingAdminTransfer(ctx context.Context, contractAddress string) (*types.PendingTransfer, error)
}
