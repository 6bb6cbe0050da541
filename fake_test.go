package accessctl

import (
	"context"

	"github.com/stellarkit/accessctl/types"
)

// fakeInspector implements sdk.Inspector with canned values for testing.
type fakeInspector struct {
	owner     types.OwnershipInfo
	ownerErr  error
	admin     types.AdminInfo
	adminErr  error
	ledger    uint32
	ledgerErr error

	ledgerCalls int
}

func (f *fakeInspector) GetOwner(context.Context, string) (types.OwnershipInfo, error) {
	return f.owner, f.ownerErr
}

func (f *fakeInspector) GetPendingOwner(context.Context, string) (string, error) {
	return "", nil
}

func (f *fakeInspector) GetAdmin(context.Context, string) (types.AdminInfo, error) {
	return f.admin, f.adminErr
}

func (f *fakeInspector) HasRole(context.Context, string, types.RoleIdentifier, string) (bool, error) {
	return false, nil
}

func (f *fakeInspector) GetRoleMemberCount(context.Context, string, types.RoleIdentifier) (uint32, error) {
	return 0, nil
}

func (f *fakeInspector) GetRoleMember(context.Context, string, types.RoleIdentifier, uint32) (string, error) {
	return "", nil
}

func (f *fakeInspector) EnumerateRoleMembers(context.Context, string, types.RoleIdentifier) ([]string, error) {
	return []string{}, nil
}

func (f *fakeInspector) CurrentLedger(context.Context) (uint32, error) {
	f.ledgerCalls++
	return f.ledger, f.ledgerErr
}

// fakeIndexer implements sdk.HistoryIndexer with canned pending-transfer
// results.
type fakeIndexer struct {
	available  bool
	pending    *types.PendingTransfer
	pendingErr error

	pendingCalls int
}

func (f *fakeIndexer) CheckAvailability(context.Context) bool {
	return f.available
}

func (f *fakeIndexer) QueryHistory(context.Context, string, types.HistoryFilter) (types.HistoryPage, error) {
	return types.HistoryPage{Items: []types.HistoryEntry{}}, nil
}

func (f *fakeIndexer) DiscoverRoleIDs(context.Context, string) ([]string, error) {
	return []string{}, nil
}

func (f *fakeIndexer) LatestGrants(context.Context, string, types.RoleIdentifier, []string) (map[string]types.GrantRecord, error) {
	return map[string]types.GrantRecord{}, nil
}

func (f *fakeIndexer) PendingOwnershipTransfer(context.Context, string) (*types.PendingTransfer, error) {
	f.pendingCalls++
	return f.pending, f.pendingErr
}

func (f *fakeIndexer) PendingAdminTransfer(context.Context, string) (*types.PendingTransfer, error) {
	f.pendingCalls++
	return f.pending, f.pendingErr
}
