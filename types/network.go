package types

import "github.com/go-playground/validator/v10"

// IndexerEndpoints are the history-index endpoints for one network.
type IndexerEndpoints struct {
	HTTP string `json:"http,omitempty" validate:"omitempty,url"`
	WS   string `json:"ws,omitempty" validate:"omitempty,uri"`
}

// Empty reports whether no HTTP endpoint is present. The WS endpoint alone
// cannot serve queries.
func (e IndexerEndpoints) Empty() bool {
	return e.HTTP == ""
}

// NetworkConfig describes one network: its RPC endpoint and, optionally, the
// default history-index endpoints.
type NetworkConfig struct {
	Name              string            `json:"name" validate:"required"`
	RPCURL            string            `json:"rpcUrl" validate:"required,url"`
	NetworkPassphrase string            `json:"networkPassphrase,omitempty"`
	Indexer           *IndexerEndpoints `json:"indexer,omitempty"`
}

// Validate checks the config's shape before any client is constructed.
func (c NetworkConfig) Validate() error {
	return validator.New().Struct(c)
}
