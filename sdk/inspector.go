package sdk

import (
	"context"

	"github.com/stellarkit/accessctl/types"
)

// Inspector reads the on-chain access-control state of a contract.
type Inspector interface {
	// GetOwner returns the current owner. A renounced contract yields an
	// OwnershipInfo with no owner.
	GetOwner(ctx context.Context, contractAddress string) (types.OwnershipInfo, error)

	// GetPendingOwner returns the pending owner where the contract exposes a
	// single-step view of it. The result is advisory, not authoritative; ""
	// means none or unsupported.
	GetPendingOwner(ctx context.Context, contractAddress string) (string, error)

	// GetAdmin returns the current admin. An AdminInfo with no admin means
	// the admin role has been renounced.
	GetAdmin(ctx context.Context, contractAddress string) (types.AdminInfo, error)

	// HasRole reports whether account holds role. A false from this path
	// means "unknown or absent", not a security decision by itself.
	HasRole(ctx context.Context, contractAddress string, role types.RoleIdentifier, account string) (bool, error)

	GetRoleMemberCount(ctx context.Context, contractAddress string, role types.RoleIdentifier) (uint32, error)
	GetRoleMember(ctx context.Context, contractAddress string, role types.RoleIdentifier, index uint32) (string, error)

	// EnumerateRoleMembers lists every member of role, preserving index
	// order. Unlike the single-member reads it fails loudly: a partial
	// enumeration is worse than a visible failure for audit listings.
	EnumerateRoleMembers(ctx context.Context, contractAddress string, role types.RoleIdentifier) ([]string, error)

	// CurrentLedger returns the chain's current ledger sequence, the clock
	// for expiration decisions.
	CurrentLedger(ctx context.Context) (uint32, error)
}
