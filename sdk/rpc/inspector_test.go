package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarkit/accessctl/internal/testutils"
	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

var adminRole = types.NewRoleIdentifier("admin", "")

// fakeExecutor routes every invocation through a test-provided handler.
type fakeExecutor struct {
	handler func(contract, function string, args []any) (any, error)
}

func (f *fakeExecutor) Execute(_ context.Context, contract, function string, args []any) (any, error) {
	return f.handler(contract, function, args)
}

type fakeLedger struct {
	sequence uint32
	err      error
}

func (f *fakeLedger) LatestLedger(context.Context) (uint32, error) {
	return f.sequence, f.err
}

func newTestInspector(handler func(contract, function string, args []any) (any, error)) *Inspector {
	return NewInspector(&fakeExecutor{handler: handler}, &fakeLedger{sequence: 100})
}

func staticResults(results map[string]any, errs map[string]error) func(string, string, []any) (any, error) {
	return func(_, function string, _ []any) (any, error) {
		if err, ok := errs[function]; ok {
			return nil, err
		}

		return results[function], nil
	}
}

func TestGetOwner(t *testing.T) {
	t.Parallel()

	t.Run("owner present", func(t *testing.T) {
		t.Parallel()

		inspector := newTestInspector(staticResults(map[string]any{"get_owner": testutils.AccountA}, nil))
		ownership, err := inspector.GetOwner(context.Background(), testutils.ContractA)
		require.NoError(t, err)
		assert.Equal(t, testutils.AccountA, ownership.Owner)
		assert.False(t, ownership.Renounced())
	})

	t.Run("nil result means renounced", func(t *testing.T) {
		t.Parallel()

		inspector := newTestInspector(staticResults(nil, nil))
		ownership, err := inspector.GetOwner(context.Background(), testutils.ContractA)
		require.NoError(t, err)
		assert.True(t, ownership.Renounced())
	})

	t.Run("call failure propagates", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("contract not found")
		inspector := newTestInspector(staticResults(nil, map[string]error{"get_owner": cause}))
		_, err := inspector.GetOwner(context.Background(), testutils.ContractA)

		var target *sdk.OperationFailedError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "get_owner", target.Operation)
		assert.Equal(t, testutils.ContractA, target.ContractAddress)
		require.ErrorIs(t, err, cause)
	})
}

func TestGetPendingOwnerSwallowsFailures(t *testing.T) {
	t.Parallel()

	inspector := newTestInspector(staticResults(nil, map[string]error{
		"get_pending_owner": errors.New("function does not exist"),
	}))

	pending, err := inspector.GetPendingOwner(context.Background(), testutils.ContractA)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestGetAdmin(t *testing.T) {
	t.Parallel()

	inspector := newTestInspector(staticResults(map[string]any{"get_admin": testutils.AccountB}, nil))
	admin, err := inspector.GetAdmin(context.Background(), testutils.ContractA)
	require.NoError(t, err)
	assert.Equal(t, testutils.AccountB, admin.Admin)

	cause := errors.New("simulation failed")
	inspector = newTestInspector(staticResults(nil, map[string]error{"get_admin": cause}))
	_, err = inspector.GetAdmin(context.Background(), testutils.ContractA)
	require.ErrorIs(t, err, cause)
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
		err    error
		want   bool
	}{
		{name: "member index zero", result: uint64(0), want: true},
		{name: "member index as string", result: "3", want: true},
		{name: "nil means not a member", result: nil, want: false},
		{name: "non-numeric answer", result: "nope", want: false},
		{name: "call failure reads as false", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inspector := newTestInspector(func(_, function string, args []any) (any, error) {
				require.Equal(t, "has_role", function)
				require.Equal(t, []any{testutils.AccountA, "admin"}, args)
				return tt.result, tt.err
			})

			held, err := inspector.HasRole(context.Background(), testutils.ContractA, adminRole, testutils.AccountA)
			require.NoError(t, err)
			assert.Equal(t, tt.want, held)
		})
	}
}

func TestGetRoleMemberCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
		err    error
		want   uint32
	}{
		{name: "count", result: uint64(7), want: 7},
		{name: "nil degrades to zero", result: nil, want: 0},
		{name: "non-numeric degrades to zero", result: "many", want: 0},
		{name: "out of uint32 range degrades to zero", result: uint64(1) << 40, want: 0},
		{name: "call failure degrades to zero", err: errors.New("boom"), want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inspector := newTestInspector(staticResults(map[string]any{"get_role_member_count": tt.result}, map[string]error{}))
			if tt.err != nil {
				inspector = newTestInspector(staticResults(nil, map[string]error{"get_role_member_count": tt.err}))
			}

			count, err := inspector.GetRoleMemberCount(context.Background(), testutils.ContractA, adminRole)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestGetRoleMember(t *testing.T) {
	t.Parallel()

	inspector := newTestInspector(func(_, function string, args []any) (any, error) {
		require.Equal(t, "get_role_member", function)
		require.Equal(t, []any{"admin", uint32(2)}, args)
		return testutils.AccountC, nil
	})

	member, err := inspector.GetRoleMember(context.Background(), testutils.ContractA, adminRole, 2)
	require.NoError(t, err)
	assert.Equal(t, testutils.AccountC, member)

	inspector = newTestInspector(staticResults(nil, map[string]error{"get_role_member": errors.New("boom")}))
	member, err = inspector.GetRoleMember(context.Background(), testutils.ContractA, adminRole, 0)
	require.NoError(t, err)
	assert.Empty(t, member)
}

func TestEnumerateRoleMembers(t *testing.T) {
	t.Parallel()

	memberAt := func(idx uint32) string {
		return fmt.Sprintf("%s#%d", testutils.AccountA, idx)
	}

	t.Run("preserves index order under concurrency", func(t *testing.T) {
		t.Parallel()

		const count = 12
		var inFlight, peak atomic.Int32

		inspector := newTestInspector(func(_, function string, args []any) (any, error) {
			if function == "get_role_member_count" {
				return uint64(count), nil
			}
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			return memberAt(cast.ToUint32(args[1])), nil
		})

		members, err := inspector.EnumerateRoleMembers(context.Background(), testutils.ContractA, adminRole)
		require.NoError(t, err)

		require.Len(t, members, count)
		for idx, member := range members {
			assert.Equal(t, memberAt(uint32(idx)), member)
		}
		assert.LessOrEqual(t, peak.Load(), int32(MaxConcurrentMemberReads))
	})

	t.Run("empty role", func(t *testing.T) {
		t.Parallel()

		inspector := newTestInspector(staticResults(map[string]any{"get_role_member_count": uint64(0)}, nil))
		members, err := inspector.EnumerateRoleMembers(context.Background(), testutils.ContractA, adminRole)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("absent entries are dropped", func(t *testing.T) {
		t.Parallel()

		inspector := newTestInspector(func(_, function string, args []any) (any, error) {
			if function == "get_role_member_count" {
				return uint64(3), nil
			}
			if cast.ToUint32(args[1]) == 1 {
				return nil, nil
			}

			return memberAt(cast.ToUint32(args[1])), nil
		})

		members, err := inspector.EnumerateRoleMembers(context.Background(), testutils.ContractA, adminRole)
		require.NoError(t, err)
		assert.Equal(t, []string{memberAt(0), memberAt(2)}, members)
	})

	t.Run("single failed read fails the enumeration", func(t *testing.T) {
		t.Parallel()

		inspector := newTestInspector(func(_, function string, args []any) (any, error) {
			if function == "get_role_member_count" {
				return uint64(4), nil
			}
			if cast.ToUint32(args[1]) == 2 {
				return nil, errors.New("timeout")
			}

			return memberAt(cast.ToUint32(args[1])), nil
		})

		_, err := inspector.EnumerateRoleMembers(context.Background(), testutils.ContractA, adminRole)
		var target *sdk.OperationFailedError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "get_role_member", target.Operation)
	})
}

func TestCurrentLedger(t *testing.T) {
	t.Parallel()

	inspector := NewInspector(&fakeExecutor{}, &fakeLedger{sequence: 12345})
	sequence, err := inspector.CurrentLedger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(12345), sequence)

	inspector = NewInspector(&fakeExecutor{}, &fakeLedger{err: errors.New("rpc down")})
	_, err = inspector.CurrentLedger(context.Background())
	var target *sdk.OperationFailedError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "get_latest_ledger", target.Operation)
}
