// Package indexer implements the history-index client: endpoint resolution,
// availability probing and derived access-control queries over the indexer's
// GraphQL API.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/stellarkit/accessctl/sdk"
	"github.com/stellarkit/accessctl/types"
)

// Overrides maps a network name to indexer endpoints, consulted before the
// network config's defaults.
type Overrides map[string]types.IndexerEndpoints

// ParseOverrides decodes a JSON object mapping network names to either a
// bare HTTP endpoint string or an {http, ws} object.
func ParseOverrides(raw []byte) (Overrides, error) {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse indexer overrides: %w", err)
	}

	overrides := make(Overrides, len(generic))
	for name, msg := range generic {
		var endpoint string
		if err := json.Unmarshal(msg, &endpoint); err == nil {
			overrides[name] = types.IndexerEndpoints{HTTP: endpoint}
			continue
		}
		var endpoints types.IndexerEndpoints
		if err := json.Unmarshal(msg, &endpoints); err != nil {
			return nil, fmt.Errorf("parse indexer override for network %s: %w", name, err)
		}
		overrides[name] = endpoints
	}

	return overrides, nil
}

var _ sdk.HistoryIndexer = (*Client)(nil)

// Client queries one network's history indexer. Endpoint resolution and the
// availability probe are memoized for the client's lifetime, so construct
// one client per logical session. The memo fields are deliberately unlocked:
// concurrent first calls may each issue a redundant probe, which is
// tolerated.
type Client struct {
	network    types.NetworkConfig
	overrides  Overrides
	httpClient *http.Client

	resolved  *types.IndexerEndpoints
	available *bool
	gql       *graphql.Client
}

// Option configures a Client.
type Option func(*Client)

// WithOverrides supplies runtime endpoint overrides keyed by network name.
func WithOverrides(overrides Overrides) Option {
	return func(c *Client) { c.overrides = overrides }
}

// WithHTTPClient supplies the transport used for every indexer request.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a Client for the given network.
func New(network types.NetworkConfig, opts ...Option) *Client {
	c := &Client{network: network, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoints resolves the indexer endpoints for the client's network and
// memoizes the result. Precedence: runtime override, then network-config
// default, then derivation from the RPC URL.
func (c *Client) Endpoints() types.IndexerEndpoints {
	if c.resolved != nil {
		return *c.resolved
	}

	var resolved types.IndexerEndpoints
	if endpoints, ok := c.overrides[c.network.Name]; ok {
		resolved = endpoints
	} else if c.network.Indexer != nil {
		resolved = *c.network.Indexer
	} else {
		resolved = deriveFromRPC(c.network.RPCURL)
	}
	c.resolved = &resolved

	return resolved
}

// deriveFromRPC is reserved for deriving an indexer endpoint from a known
// RPC URL. No derivation rules exist today.
func deriveFromRPC(string) types.IndexerEndpoints {
	return types.IndexerEndpoints{}
}

func (c *Client) graphqlClient() *graphql.Client {
	if c.gql == nil {
		c.gql = graphql.NewClient(c.Endpoints().HTTP, c.httpClient)
	}

	return c.gql
}

// probeQuery is the minimal document used to test reachability.
const probeQuery = `query { _metadata { lastProcessedHeight } }`

// CheckAvailability probes the indexer once and memoizes the result. A
// client with no resolved HTTP endpoint is unavailable without any network
// call. There is no retry and no TTL: one probe per client instance.
func (c *Client) CheckAvailability(ctx context.Context) bool {
	if c.available != nil {
		return *c.available
	}

	available := false
	if !c.Endpoints().Empty() {
		_, err := c.graphqlClient().ExecRaw(ctx, probeQuery, nil)
		available = err == nil
		if err != nil {
			sdk.LoggerFrom(ctx).Warnf("indexer probe failed for network %s: %v", c.network.Name, err)
		}
	}
	c.available = &available

	return available
}

// requireAvailable gates every query on the memoized probe.
func (c *Client) requireAvailable(ctx context.Context) error {
	if !c.CheckAvailability(ctx) {
		return &sdk.IndexerUnavailableError{Network: c.network.Name}
	}

	return nil
}
