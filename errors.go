package accessctl

import (
	"fmt"
	"strings"
)

// ConfigurationInvalidError is returned when caller-supplied input fails
// validation. It is always raised synchronously, before any network I/O.
type ConfigurationInvalidError struct {
	Param  string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationInvalidError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// NewConfigurationInvalidError creates a new ConfigurationInvalidError.
func NewConfigurationInvalidError(param, value, reason string) *ConfigurationInvalidError {
	return &ConfigurationInvalidError{Param: param, Value: value, Reason: reason}
}

// UnsupportedContractFeaturesError is returned when a contract does not
// implement, or does not conform to, the expected access-control surface. It
// gates every mutating flow.
type UnsupportedContractFeaturesError struct {
	ContractAddress string
	Notes           []string
}

// Error implements the error interface.
func (e *UnsupportedContractFeaturesError) Error() string {
	msg := fmt.Sprintf("contract %s does not support access management", e.ContractAddress)
	if len(e.Notes) > 0 {
		msg += ": " + strings.Join(e.Notes, "; ")
	}

	return msg
}

// NewUnsupportedContractFeaturesError creates a new
// UnsupportedContractFeaturesError.
func NewUnsupportedContractFeaturesError(contractAddress string, notes []string) *UnsupportedContractFeaturesError {
	return &UnsupportedContractFeaturesError{ContractAddress: contractAddress, Notes: notes}
}
