package types

import "time"

// OwnershipInfo is the on-chain ownership value of a contract.
type OwnershipInfo struct {
	Owner string `json:"owner,omitempty"`
}

// Renounced reports whether ownership has been renounced (no owner set).
func (o OwnershipInfo) Renounced() bool {
	return o.Owner == ""
}

// AdminInfo is the on-chain admin value of a contract.
type AdminInfo struct {
	Admin string `json:"admin,omitempty"`
}

// Unset reports whether the contract has no admin.
func (a AdminInfo) Unset() bool {
	return a.Admin == ""
}

// PendingTransfer is a two-step ownership or admin handover that has been
// initiated but not yet accepted. It is reconstructed from indexer events on
// every query and never stored.
type PendingTransfer struct {
	PendingPrincipal  string    `json:"pendingPrincipal"`
	PreviousPrincipal string    `json:"previousPrincipal"`
	InitiatedAtLedger uint32    `json:"initiatedAtLedger"`
	LiveUntilLedger   uint32    `json:"liveUntilLedger"`
	Timestamp         time.Time `json:"timestamp"`
	TxHash            string    `json:"txHash"`
}

// Expired reports whether the acceptance window has closed at the given
// ledger. The window closes exactly at LiveUntilLedger.
func (p PendingTransfer) Expired(currentLedger uint32) bool {
	return currentLedger >= p.LiveUntilLedger
}

// TransferState classifies the ownership (or admin) position of a contract.
type TransferState string

const (
	TransferStateOwned     TransferState = "owned"
	TransferStatePending   TransferState = "pending"
	TransferStateExpired   TransferState = "expired"
	TransferStateRenounced TransferState = "renounced"
)

// ResolveTransferState combines the on-chain principal, an optional pending
// transfer and the current ledger into one state. A renounced principal wins
// over any pending transfer; an existing transfer is pending only while the
// current ledger is strictly below its expiration ledger.
func ResolveTransferState(principal string, pending *PendingTransfer, currentLedger uint32) TransferState {
	if principal == "" {
		return TransferStateRenounced
	}
	if pending == nil {
		return TransferStateOwned
	}
	if pending.Expired(currentLedger) {
		return TransferStateExpired
	}

	return TransferStatePending
}

// TransferStatus is the reconciled access position of a contract.
type TransferStatus struct {
	State         TransferState    `json:"state"`
	Principal     string           `json:"principal,omitempty"`
	Pending       *PendingTransfer `json:"pending,omitempty"`
	CurrentLedger uint32           `json:"currentLedger,omitempty"`
}

// ExpirationValidation is the outcome of checking a proposed expiration
// ledger against the chain's current height.
type ExpirationValidation struct {
	Valid         bool   `json:"valid"`
	CurrentLedger uint32 `json:"currentLedger"`
	Reason        string `json:"reason,omitempty"`
}
