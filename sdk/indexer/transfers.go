package indexer

import (
	"context"

	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

// transferEventPair names the initiation and completion change types of a
// two-step handover.
type transferEventPair struct {
	initiated types.ChangeType
	completed types.ChangeType
}

var (
	ownershipTransferEvents = transferEventPair{
		initiated: types.ChangeTypeOwnershipTransferStarted,
		completed: types.ChangeTypeOwnershipTransferCompleted,
	}
	adminTransferEvents = transferEventPair{
		initiated: types.ChangeTypeAdminTransferInitiated,
		completed: types.ChangeTypeAdminTransferCompleted,
	}
)

// PendingOwnershipTransfer returns the in-flight ownership handover, or nil
// when none is pending.
func (c *Client) PendingOwnershipTransfer(ctx context.Context, contractAddress string) (*types.PendingTransfer, error) {
	return c.pendingTransfer(ctx, contractAddress, ownershipTransferEvents)
}

// PendingAdminTransfer returns the in-flight admin handover, or nil when
// none is pending.
func (c *Client) PendingAdminTransfer(ctx context.Context, contractAddress string) (*types.PendingTransfer, error) {
	return c.pendingTransfer(ctx, contractAddress, adminTransferEvents)
}

// pendingTransfer correlates the latest initiation event with any later
// completion event. A malformed initiation event yields no transfer rather
// than a partial record. A failed completion query is a hard error: treating
// it as "no completion found" would report a completed transfer as still
// pending, which is an integrity violation, not a degradation.
func (c *Client) pendingTransfer(ctx context.Context, contractAddress string, events transferEventPair) (*types.PendingTransfer, error) {
	conn, err := c.fetchEvents(ctx, contractAddress, types.HistoryFilter{
		ChangeType: events.initiated,
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(conn.Nodes) == 0 {
		return nil, nil
	}

	initiation := conn.Nodes[0]
	previous := initiation.previousPrincipal()
	pending := initiation.pendingPrincipal()
	if previous == "" || pending == "" || initiation.LiveUntilLedger == 0 {
		// Partial events written by older indexer versions are unusable and
		// must never surface as a valid pending transfer.
		sdk.LoggerFrom(ctx).Warnf("ignoring malformed %s event in tx %s for contract %s",
			events.initiated, initiation.TxHash, contractAddress)
		return nil, nil
	}

	initiatedAt := initiation.Timestamp
	completions, err := c.fetchEvents(ctx, contractAddress, types.HistoryFilter{
		ChangeType:    events.completed,
		TimestampFrom: &initiatedAt,
		Limit:         1,
	})
	if err != nil {
		return nil, err
	}
	if len(completions.Nodes) > 0 {
		return nil, nil
	}

	return &types.PendingTransfer{
		PendingPrincipal:  pending,
		PreviousPrincipal: previous,
		InitiatedAtLedger: initiation.Ledger,
		LiveUntilLedger:   initiation.LiveUntilLedger,
		Timestamp:         initiation.Timestamp,
		TxHash:            initiation.TxHash,
	}, nil
}
