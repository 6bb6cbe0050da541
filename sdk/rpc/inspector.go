// Package rpc implements the on-chain reader over an injected query-execution
// collaborator, plus a minimal ledger-height client for Soroban RPC.
package rpc

import (
	"context"

	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/stellarkit/accessctl/internal/utils/safecast"
	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

// MaxConcurrentMemberReads bounds the fan-out of role-member enumeration so
// a large membership cannot saturate a shared RPC endpoint.
const MaxConcurrentMemberReads = 5

// failureMode declares what a read operation does when the underlying call
// fails.
type failureMode int

const (
	// failPropagate wraps the cause in an OperationFailedError.
	failPropagate failureMode = iota
	// failDefault swallows the cause and yields the operation's zero value.
	// Consumers of these reads are list and visibility surfaces that prefer
	// a conservative default over an error.
	failDefault
)

// Failure modes per operation, kept in one place so the swallow-vs-propagate
// policy stays auditable.
var operationFailureModes = map[string]failureMode{
	"get_owner":             failPropagate,
	"get_pending_owner":     failDefault,
	"get_admin":             failPropagate,
	"has_role":              failDefault,
	"get_role_member_count": failDefault,
	"get_role_member":       failDefault,
}

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector reads access-control state through an injected query executor
// and ledger reader.
type Inspector struct {
	executor sdk.QueryExecutor
	ledger   sdk.LedgerReader
}

// NewInspector creates a new Inspector.
func NewInspector(executor sdk.QueryExecutor, ledger sdk.LedgerReader) *Inspector {
	return &Inspector{executor: executor, ledger: ledger}
}

// call runs one read-only invocation under the operation's failure mode.
// Swallowed failures are logged and surface as (nil, false, nil).
func (i *Inspector) call(ctx context.Context, contractAddress, function string, args ...any) (any, bool, error) {
	result, err := i.executor.Execute(ctx, contractAddress, function, args)
	if err == nil {
		return result, true, nil
	}
	if operationFailureModes[function] == failDefault {
		sdk.LoggerFrom(ctx).Warnf("treating failed %s on %s as absent: %v", function, contractAddress, err)
		return nil, false, nil
	}

	return nil, false, sdk.NewOperationFailedError(function, contractAddress, err)
}

// GetOwner returns the contract's current owner. An absent on-chain value
// means ownership has been renounced.
func (i *Inspector) GetOwner(ctx context.Context, contractAddress string) (types.OwnershipInfo, error) {
	result, ok, err := i.call(ctx, contractAddress, "get_owner")
	if err != nil {
		return types.OwnershipInfo{}, err
	}
	if !ok || result == nil {
		return types.OwnershipInfo{}, nil
	}

	return types.OwnershipInfo{Owner: cast.ToString(result)}, nil
}

// GetPendingOwner returns the single-step pending-owner view where the
// contract supports it. The query is advisory: a failed call means "not
// supported" and yields no pending owner.
func (i *Inspector) GetPendingOwner(ctx context.Context, contractAddress string) (string, error) {
	result, ok, err := i.call(ctx, contractAddress, "get_pending_owner")
	if err != nil {
		return "", err
	}
	if !ok || result == nil {
		return "", nil
	}

	return cast.ToString(result), nil
}

// GetAdmin returns the contract's current admin. An absent on-chain value
// means the admin role has been renounced.
func (i *Inspector) GetAdmin(ctx context.Context, contractAddress string) (types.AdminInfo, error) {
	result, ok, err := i.call(ctx, contractAddress, "get_admin")
	if err != nil {
		return types.AdminInfo{}, err
	}
	if !ok || result == nil {
		return types.AdminInfo{}, nil
	}

	return types.AdminInfo{Admin: cast.ToString(result)}, nil
}

// HasRole reports whether account holds role. The contract answers with the
// member's index when the role is held; any non-numeric or absent answer
// reads as false.
func (i *Inspector) HasRole(ctx context.Context, contractAddress string, role types.RoleIdentifier, account string) (bool, error) {
	result, ok, err := i.call(ctx, contractAddress, "has_role", account, role.Normalized())
	if err != nil {
		return false, err
	}
	if !ok || result == nil {
		return false, nil
	}
	if _, castErr := cast.ToUint64E(result); castErr != nil {
		return false, nil
	}

	return true, nil
}

// GetRoleMemberCount returns the number of members of role, degrading to 0
// on failure so list surfaces stay responsive.
func (i *Inspector) GetRoleMemberCount(ctx context.Context, contractAddress string, role types.RoleIdentifier) (uint32, error) {
	result, ok, err := i.call(ctx, contractAddress, "get_role_member_count", role.Normalized())
	if err != nil {
		return 0, err
	}
	if !ok || result == nil {
		return 0, nil
	}
	raw, castErr := cast.ToUint64E(result)
	if castErr != nil {
		return 0, nil
	}
	count, rangeErr := safecast.Uint64ToUint32(raw)
	if rangeErr != nil {
		return 0, nil
	}

	return count, nil
}

// GetRoleMember returns the member of role at index, degrading to "" on
// failure.
func (i *Inspector) GetRoleMember(ctx context.Context, contractAddress string, role types.RoleIdentifier, index uint32) (string, error) {
	result, ok, err := i.call(ctx, contractAddress, "get_role_member", role.Normalized(), index)
	if err != nil {
		return "", err
	}
	if !ok || result == nil {
		return "", nil
	}

	return cast.ToString(result), nil
}

// EnumerateRoleMembers fetches the member count and reads one member per
// index concurrently, capped at MaxConcurrentMemberReads. Index order is
// preserved regardless of completion order and absent entries are dropped.
// Any failed member read fails the whole enumeration.
func (i *Inspector) EnumerateRoleMembers(ctx context.Context, contractAddress string, role types.RoleIdentifier) ([]string, error) {
	count, err := i.GetRoleMemberCount(ctx, contractAddress, role)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []string{}, nil
	}

	members := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentMemberReads)
	for idx := uint32(0); idx < count; idx++ {
		idx := idx
		g.Go(func() error {
			result, execErr := i.executor.Execute(gctx, contractAddress, "get_role_member", []any{role.Normalized(), idx})
			if execErr != nil {
				return sdk.NewOperationFailedError("get_role_member", contractAddress, execErr)
			}
			if result != nil {
				members[idx] = cast.ToString(result)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for _, member := range members {
		if member != "" {
			out = append(out, member)
		}
	}

	return out, nil
}

// CurrentLedger returns the chain's latest ledger sequence. This value feeds
// expiration decisions, so failures propagate instead of degrading.
func (i *Inspector) CurrentLedger(ctx context.Context) (uint32, error) {
	sequence, err := i.ledger.LatestLedger(ctx)
	if err != nil {
		return 0, sdk.NewOperationFailedError("get_latest_ledger", "", err)
	}

	return sequence, nil
}
