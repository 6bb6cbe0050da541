package types

import (
	"strings"
	"time"
)

// ChangeType classifies an access-control history event.
type ChangeType string

const (
	ChangeTypeGranted                    ChangeType = "GRANTED"
	ChangeTypeRevoked                    ChangeType = "REVOKED"
	ChangeTypeOwnershipTransferStarted   ChangeType = "OWNERSHIP_TRANSFER_STARTED"
	ChangeTypeOwnershipTransferCompleted ChangeType = "OWNERSHIP_TRANSFER_COMPLETED"
	ChangeTypeAdminTransferInitiated     ChangeType = "ADMIN_TRANSFER_INITIATED"
	ChangeTypeAdminTransferCompleted     ChangeType = "ADMIN_TRANSFER_COMPLETED"
	ChangeTypeUnknown                    ChangeType = "UNKNOWN"
)

var stringToChangeType = map[string]ChangeType{
	"GRANTED":                      ChangeTypeGranted,
	"REVOKED":                      ChangeTypeRevoked,
	"OWNERSHIP_TRANSFER_STARTED":   ChangeTypeOwnershipTransferStarted,
	"OWNERSHIP_TRANSFER_COMPLETED": ChangeTypeOwnershipTransferCompleted,
	"ADMIN_TRANSFER_INITIATED":     ChangeTypeAdminTransferInitiated,
	"ADMIN_TRANSFER_COMPLETED":     ChangeTypeAdminTransferCompleted,
}

// ParseChangeType maps a wire value to a ChangeType. Values introduced by
// newer indexer versions come back as UNKNOWN rather than failing the query.
func ParseChangeType(s string) ChangeType {
	if ct, ok := stringToChangeType[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return ct
	}

	return ChangeTypeUnknown
}

// HistoryEntry is one access-control event read from the history index,
// ordered newest first by the indexer.
type HistoryEntry struct {
	Role       RoleIdentifier `json:"role"`
	Account    string         `json:"account,omitempty"`
	ChangeType ChangeType     `json:"changeType"`
	TxID       string         `json:"txId"`
	Timestamp  time.Time      `json:"timestamp"`
	Ledger     uint32         `json:"ledger"`
}

// DedupKey identifies an entry across page boundaries. Cursor pagination is
// best-effort; same-timestamp events can repeat between pages.
func (e HistoryEntry) DedupKey() string {
	return strings.Join([]string{e.TxID, e.Role.Normalized(), e.Account, string(e.ChangeType)}, "|")
}

// HistoryFilter narrows a history query. Zero values mean "not filtered";
// numeric and time filters use pointers so their zero values stay
// expressible.
type HistoryFilter struct {
	RoleID        string
	Account       string
	Accounts      []string
	ChangeType    ChangeType
	TxID          string
	Ledger        *uint32
	TimestampFrom *time.Time
	TimestampTo   *time.Time
	Limit         int
	Cursor        string
}

// PageInfo is the indexer's pagination state for one page.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

// HistoryPage is one page of history entries plus pagination state.
type HistoryPage struct {
	Items    []HistoryEntry `json:"items"`
	PageInfo PageInfo       `json:"pageInfo"`
}

// GrantRecord is the most recent grant of a role to one account.
type GrantRecord struct {
	Timestamp time.Time `json:"timestamp"`
	TxID      string    `json:"txId"`
	Ledger    uint32    `json:"ledger"`
}
