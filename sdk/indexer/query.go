package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

// defaultPageSize bounds a single history page when the caller does not ask
// for a specific limit.
const defaultPageSize = 100

// maxDiscoveryPages caps role discovery so an unbounded history cannot loop
// forever.
const maxDiscoveryPages = 20

// historyQuery is the parameterized document for access-control events,
// ordered newest first. The filter clause is the conjunction of only the
// provided filters.
const historyQuery = `query AccessControlEvents($filter: AccessControlEventFilter, $first: Int, $after: Cursor) {
  accessControlEvents(filter: $filter, orderBy: TIMESTAMP_DESC, first: $first, after: $after) {
    nodes {
      roleId
      roleLabel
      account
      changeType
      txHash
      timestamp
      ledger
      previousOwner
      admin
      newOwner
      pendingOwner
      liveUntilLedger
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// eventNode is the wire shape of one history event. The principal fields
// vary by schema generation; the adapters below accept any known variant and
// fail closed when none is present.
type eventNode struct {
	RoleID             string    `json:"roleId"`
	RoleLabel          string    `json:"roleLabel"`
	Account            string    `json:"account"`
	ChangeType         string    `json:"changeType"`
	TxHash             string    `json:"txHash"`
	Timestamp          time.Time `json:"timestamp"`
	Ledger             uint32    `json:"ledger"`
	PreviousOwner      string    `json:"previousOwner"`
	PreviousOwnerSnake string    `json:"previous_owner"`
	Admin              string    `json:"admin"`
	NewOwner           string    `json:"newOwner"`
	PendingOwner       string    `json:"pendingOwner"`
	LiveUntilLedger    uint32    `json:"liveUntilLedger"`
}

// previousPrincipal returns the initiating principal under any of the wire
// names used across schema generations, or "" when none is present.
func (n eventNode) previousPrincipal() string {
	for _, value := range []string{n.Admin, n.PreviousOwner, n.PreviousOwnerSnake} {
		if value != "" {
			return value
		}
	}

	return ""
}

// pendingPrincipal returns the incoming principal of an initiation event.
func (n eventNode) pendingPrincipal() string {
	if n.NewOwner != "" {
		return n.NewOwner
	}

	return n.PendingOwner
}

func (n eventNode) toEntry() types.HistoryEntry {
	return types.HistoryEntry{
		Role:       types.RoleIdentifier{ID: strings.TrimSpace(n.RoleID), Label: n.RoleLabel},
		Account:    n.Account,
		ChangeType: types.ParseChangeType(n.ChangeType),
		TxID:       n.TxHash,
		Timestamp:  n.Timestamp,
		Ledger:     n.Ledger,
	}
}

type eventConnection struct {
	Nodes    []eventNode `json:"nodes"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

type historyData struct {
	AccessControlEvents eventConnection `json:"accessControlEvents"`
}

// fetchEvents executes one history query page against the indexer.
func (c *Client) fetchEvents(ctx context.Context, contractAddress string, filter types.HistoryFilter) (eventConnection, error) {
	if err := c.requireAvailable(ctx); err != nil {
		return eventConnection{}, err
	}

	variables := map[string]any{
		"filter": buildFilter(contractAddress, filter),
		"first":  pageSize(filter.Limit),
	}
	if filter.Cursor != "" {
		variables["after"] = filter.Cursor
	}

	raw, err := c.graphqlClient().ExecRaw(ctx, historyQuery, variables)
	if err != nil {
		return eventConnection{}, classifyQueryError("accessControlEvents", err)
	}

	var data historyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return eventConnection{}, &sdk.QueryError{Query: "accessControlEvents", Err: err}
	}

	return data.AccessControlEvents, nil
}

// buildFilter assembles the conjunction of only the provided filters.
func buildFilter(contractAddress string, f types.HistoryFilter) map[string]any {
	filter := map[string]any{
		"contractId": map[string]any{"equalTo": contractAddress},
	}
	if f.RoleID != "" {
		filter["roleId"] = map[string]any{"equalTo": f.RoleID}
	}
	if f.Account != "" {
		filter["account"] = map[string]any{"equalTo": f.Account}
	}
	if len(f.Accounts) > 0 {
		filter["account"] = map[string]any{"in": f.Accounts}
	}
	if f.ChangeType != "" {
		filter["changeType"] = map[string]any{"equalTo": string(f.ChangeType)}
	}
	if f.TxID != "" {
		filter["txHash"] = map[string]any{"equalTo": f.TxID}
	}
	if f.Ledger != nil {
		filter["ledger"] = map[string]any{"equalTo": *f.Ledger}
	}
	timestamp := map[string]any{}
	if f.TimestampFrom != nil {
		timestamp["greaterThanOrEqualTo"] = f.TimestampFrom.UTC().Format(time.RFC3339)
	}
	if f.TimestampTo != nil {
		timestamp["lessThanOrEqualTo"] = f.TimestampTo.UTC().Format(time.RFC3339)
	}
	if len(timestamp) > 0 {
		filter["timestamp"] = timestamp
	}

	return filter
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}

	return limit
}

// classifyQueryError distinguishes schema-level "unsupported" responses from
// transport and execution failures, so call sites never have to match on
// error message strings.
func classifyQueryError(query string, err error) error {
	var gqlErrs graphql.Errors
	if errors.As(err, &gqlErrs) {
		for _, gqlErr := range gqlErrs {
			if code, ok := gqlErr.Extensions["code"].(string); ok && code == "GRAPHQL_VALIDATION_FAILED" {
				return &sdk.UnsupportedQueryError{Query: query, Reason: gqlErr.Message}
			}
		}
	}

	return &sdk.QueryError{Query: query, Err: err}
}

// QueryHistory returns one page of access-control history for a contract,
// newest first. Entries repeated at page boundaries are dropped by compound
// key. An empty result is a valid empty page, not an error.
func (c *Client) QueryHistory(ctx context.Context, contractAddress string, filter types.HistoryFilter) (types.HistoryPage, error) {
	conn, err := c.fetchEvents(ctx, contractAddress, filter)
	if err != nil {
		return types.HistoryPage{}, err
	}

	items := make([]types.HistoryEntry, 0, len(conn.Nodes))
	seen := make(map[string]struct{}, len(conn.Nodes))
	for _, node := range conn.Nodes {
		entry := node.toEntry()
		key := entry.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, entry)
	}

	return types.HistoryPage{
		Items: items,
		PageInfo: types.PageInfo{
			HasNextPage: conn.PageInfo.HasNextPage,
			EndCursor:   conn.PageInfo.EndCursor,
		},
	}, nil
}

// DiscoverRoleIDs returns the distinct role identifiers seen in the
// contract's history, excluding the OWNER sentinel that marks ownership
// events. Pages are followed by cursor and deduplicated across boundaries.
func (c *Client) DiscoverRoleIDs(ctx context.Context, contractAddress string) ([]string, error) {
	roleIDs := make([]string, 0)
	seen := make(map[string]struct{})
	cursor := ""
	for page := 0; page < maxDiscoveryPages; page++ {
		conn, err := c.fetchEvents(ctx, contractAddress, types.HistoryFilter{Cursor: cursor})
		if err != nil {
			return nil, err
		}
		for _, node := range conn.Nodes {
			id := strings.TrimSpace(node.RoleID)
			if id == "" || id == types.OwnerRoleSentinel {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			roleIDs = append(roleIDs, id)
		}
		if !conn.PageInfo.HasNextPage {
			break
		}
		cursor = conn.PageInfo.EndCursor
	}

	return roleIDs, nil
}

// LatestGrants returns the most recent grant of role per account, folding
// the descending event stream so the first event seen per account wins.
// Accounts with no grant event are absent from the result. An empty account
// list yields an empty map without touching the network.
func (c *Client) LatestGrants(ctx context.Context, contractAddress string, role types.RoleIdentifier, accounts []string) (map[string]types.GrantRecord, error) {
	grants := make(map[string]types.GrantRecord, len(accounts))
	if len(accounts) == 0 {
		return grants, nil
	}

	conn, err := c.fetchEvents(ctx, contractAddress, types.HistoryFilter{
		RoleID:     role.Normalized(),
		Accounts:   accounts,
		ChangeType: types.ChangeTypeGranted,
	})
	if err != nil {
		return nil, err
	}

	for _, node := range conn.Nodes {
		if _, have := grants[node.Account]; have {
			continue
		}
		grants[node.Account] = types.GrantRecord{
			Timestamp: node.Timestamp,
			TxID:      node.TxHash,
			Ledger:    node.Ledger,
		}
	}

	return grants, nil
}
