package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stellarkit/accessctl/internal/utils/safecast"
	"github.com/stellarkit/accessctl/sdk"
)

var _ sdk.LedgerReader = (*LedgerClient)(nil)

// LedgerClient reads the latest ledger sequence from a Soroban RPC endpoint.
// Timeouts and retries belong to the supplied http.Client.
type LedgerClient struct {
	url        string
	httpClient *http.Client
}

// NewLedgerClient creates a new LedgerClient. A nil httpClient falls back to
// http.DefaultClient.
func NewLedgerClient(url string, httpClient *http.Client) *LedgerClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &LedgerClient{url: url, httpClient: httpClient}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type latestLedgerResponse struct {
	Result *struct {
		Sequence int64 `json:"sequence"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// LatestLedger issues a getLatestLedger call and returns the reported
// sequence.
func (c *LedgerClient) LatestLedger(ctx context.Context) (uint32, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: "getLatestLedger"})
	if err != nil {
		return 0, fmt.Errorf("getLatestLedger: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("getLatestLedger: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("getLatestLedger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("getLatestLedger: unexpected status %d", resp.StatusCode)
	}

	var decoded latestLedgerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("getLatestLedger: decode response: %w", err)
	}
	if decoded.Error != nil {
		return 0, fmt.Errorf("getLatestLedger: rpc error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if decoded.Result == nil {
		return 0, fmt.Errorf("getLatestLedger: empty result")
	}

	return safecast.Int64ToUint32(decoded.Result.Sequence)
}
