package sdk

import (
	"errors"
	"fmt"
)

// OperationFailedError wraps a failed on-chain read with the operation that
// issued it.
type OperationFailedError struct {
	Operation       string
	ContractAddress string
	Err             error
}

// Error implements the error interface.
func (e *OperationFailedError) Error() string {
	if e.ContractAddress == "" {
		return fmt.Sprintf("%s failed: %s", e.Operation, e.Err)
	}

	return fmt.Sprintf("%s failed for contract %s: %s", e.Operation, e.ContractAddress, e.Err)
}

// Unwrap returns the original cause.
func (e *OperationFailedError) Unwrap() error { return e.Err }

// NewOperationFailedError creates a new OperationFailedError.
func NewOperationFailedError(operation, contractAddress string, err error) *OperationFailedError {
	return &OperationFailedError{Operation: operation, ContractAddress: contractAddress, Err: err}
}

// IndexerUnavailableError is returned when an indexer operation is attempted
// without a resolved, reachable endpoint.
type IndexerUnavailableError struct {
	Network string
}

// Error implements the error interface.
func (e *IndexerUnavailableError) Error() string {
	return fmt.Sprintf("indexer not available for network %s", e.Network)
}

// QueryError is returned when the indexer reports transport or
// document-level errors. It is never silently converted to an empty result.
type QueryError struct {
	Query string
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("indexer query %s failed: %s", e.Query, e.Err)
}

// Unwrap returns the underlying transport or server error.
func (e *QueryError) Unwrap() error { return e.Err }

// UnsupportedQueryError signals that the indexer schema does not support the
// requested query yet, as opposed to a transient failure. Callers may treat
// it as "no data" where degradation is acceptable.
type UnsupportedQueryError struct {
	Query  string
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("indexer does not support query %s: %s", e.Query, e.Reason)
}

// IsUnsupportedQuery reports whether err is, or wraps, an
// UnsupportedQueryError.
func IsUnsupportedQuery(err error) bool {
	var target *UnsupportedQueryError
	return errors.As(err, &target)
}
