package accessctl

import (
	"context"

	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

// Reconciler combines on-chain reads with indexer pending-transfer lookups
// into one authoritative access-control state per contract. It is stateless
// per call; the only caches live inside the indexer client.
type Reconciler struct {
	inspector sdk.Inspector
	indexer   sdk.HistoryIndexer
}

// NewReconciler creates a Reconciler. indexer may be nil when the network
// has no history index; reconciliation then degrades to on-chain state only.
func NewReconciler(inspector sdk.Inspector, indexer sdk.HistoryIndexer) *Reconciler {
	return &Reconciler{inspector: inspector, indexer: indexer}
}

// OwnershipState resolves the contract's ownership position: renounced,
// owned, or owned with a pending or expired two-step transfer.
func (r *Reconciler) OwnershipState(ctx context.Context, contractAddress string, caps types.Capabilities) (types.TransferStatus, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.TransferStatus{}, err
	}

	ownership, err := r.inspector.GetOwner(ctx, contractAddress)
	if err != nil {
		return types.TransferStatus{}, err
	}
	if ownership.Renounced() {
		return types.TransferStatus{State: types.TransferStateRenounced}, nil
	}

	return r.resolveState(ctx, contractAddress, ownership.Owner, caps, r.pendingOwnership)
}

// AdminState resolves the contract's admin position. It mirrors
// OwnershipState exactly, substituting admin-specific reads.
func (r *Reconciler) AdminState(ctx context.Context, contractAddress string, caps types.Capabilities) (types.TransferStatus, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.TransferStatus{}, err
	}

	admin, err := r.inspector.GetAdmin(ctx, contractAddress)
	if err != nil {
		return types.TransferStatus{}, err
	}
	if admin.Unset() {
		return types.TransferStatus{State: types.TransferStateRenounced}, nil
	}

	return r.resolveState(ctx, contractAddress, admin.Admin, caps, r.pendingAdmin)
}

type pendingLookup func(ctx context.Context, contractAddress string) (*types.PendingTransfer, error)

func (r *Reconciler) pendingOwnership(ctx context.Context, contractAddress string) (*types.PendingTransfer, error) {
	return r.indexer.PendingOwnershipTransfer(ctx, contractAddress)
}

func (r *Reconciler) pendingAdmin(ctx context.Context, contractAddress string) (*types.PendingTransfer, error) {
	return r.indexer.PendingAdminTransfer(ctx, contractAddress)
}

// resolveState runs the shared pending-transfer reconciliation for a
// non-renounced principal.
func (r *Reconciler) resolveState(ctx context.Context, contractAddress, principal string, caps types.Capabilities, lookup pendingLookup) (types.TransferStatus, error) {
	status := types.TransferStatus{State: types.TransferStateOwned, Principal: principal}

	// Pending transfers are invisible without the indexer. Reporting plain
	// ownership here is a documented degradation, not an error.
	if r.indexer == nil || !caps.SupportsHistory || !r.indexer.CheckAvailability(ctx) {
		return status, nil
	}

	pending, err := lookup(ctx, contractAddress)
	if err != nil {
		if sdk.IsUnsupportedQuery(err) {
			sdk.LoggerFrom(ctx).Warnf("indexer schema does not support transfer events yet: %v", err)
			return status, nil
		}

		return types.TransferStatus{}, err
	}
	if pending == nil {
		return status, nil
	}

	currentLedger, err := r.inspector.CurrentLedger(ctx)
	if err != nil {
		return types.TransferStatus{}, err
	}

	status.Pending = pending
	status.CurrentLedger = currentLedger
	status.State = types.ResolveTransferState(principal, pending, currentLedger)

	return status, nil
}

// CheckExpiration validates a proposed expiration ledger against the
// chain's current height. The height read is load-bearing, so its failure
// propagates instead of degrading.
func (r *Reconciler) CheckExpiration(ctx context.Context, expiration uint32) (types.ExpirationValidation, error) {
	current, err := r.inspector.CurrentLedger(ctx)
	if err != nil {
		return types.ExpirationValidation{}, err
	}

	result := types.ExpirationValidation{CurrentLedger: current}
	if err := ValidateExpirationLedger(expiration, current); err != nil {
		result.Reason = err.Error()
		return result, nil
	}
	result.Valid = true

	return result, nil
}
