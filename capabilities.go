// Package accessctl determines the authoritative access-control state of a
// contract by reconciling on-chain reads with an optional historical event
// index, and assembles unsigned access-control actions for an external
// signing collaborator.
package accessctl

import (
	"fmt"
	"strings"

	"github.com/stellarkit/accessctl/types"
)

// Function inventories of the two known access-control patterns.
var (
	ownableRequired = []string{"get_owner"}
	ownableOptional = []string{"transfer_ownership", "accept_ownership", "renounce_ownership"}

	accessControlRequired = []string{"has_role", "grant_role", "revoke_role"}
	accessControlOptional = []string{
		"get_admin",
		"get_role_member_count",
		"get_role_member",
		"renounce_role",
		"renounce_admin",
		"transfer_admin_role",
		"accept_admin_transfer",
	}
)

// Minimum optional-function counts for a detected pattern to count as
// conforming to the standard.
const (
	minOwnableOptional       = 2
	minAccessControlOptional = 4
)

// DetectCapabilities classifies a contract's declared function names into
// capability flags. Absence of a capability is a value, not an error.
// indexerAvailable is mirrored into SupportsHistory as-is; connectivity
// probing belongs to the indexer client, not the detector.
func DetectCapabilities(functions []string, indexerAvailable bool) types.Capabilities {
	inventory := make(map[string]struct{}, len(functions))
	for _, fn := range functions {
		inventory[strings.TrimSpace(fn)] = struct{}{}
	}

	has := func(name string) bool {
		_, ok := inventory[name]
		return ok
	}
	hasAll := func(names []string) bool {
		for _, name := range names {
			if !has(name) {
				return false
			}
		}

		return true
	}
	countPresent := func(names []string) int {
		n := 0
		for _, name := range names {
			if has(name) {
				n++
			}
		}

		return n
	}

	caps := types.Capabilities{SupportsHistory: indexerAvailable}
	caps.HasOwnable = hasAll(ownableRequired)
	caps.HasAccessControl = hasAll(accessControlRequired)
	caps.HasEnumerableRoles = has("get_role_member_count") && has("get_role_member")
	caps.HasTwoStepOwnable = caps.HasOwnable && has("transfer_ownership") && has("accept_ownership")
	caps.HasTwoStepAdmin = caps.HasAccessControl && has("transfer_admin_role") && has("accept_admin_transfer")

	if !caps.SupportsAccessManagement() {
		caps.Notes = append(caps.Notes, "neither ownable nor access control functions found")
		return caps
	}

	verified := true
	if caps.HasOwnable {
		if n := countPresent(ownableOptional); n < minOwnableOptional {
			verified = false
			caps.Notes = append(caps.Notes, fmt.Sprintf(
				"ownable: %d of %d optional functions present, need at least %d",
				n, len(ownableOptional), minOwnableOptional))
		}
	}
	if caps.HasAccessControl {
		if n := countPresent(accessControlOptional); n < minAccessControlOptional {
			verified = false
			caps.Notes = append(caps.Notes, fmt.Sprintf(
				"access control: %d of %d optional functions present, need at least %d",
				n, len(accessControlOptional), minAccessControlOptional))
		}
	}
	caps.VerifiedAgainstStandard = verified

	return caps
}

// RequireAccessManagement gates mutating flows on the detected capability
// surface. Callers must invoke it before assembling any access-control
// mutation.
func RequireAccessManagement(contractAddress string, caps types.Capabilities) error {
	if !caps.SupportsAccessManagement() || !caps.VerifiedAgainstStandard {
		return NewUnsupportedContractFeaturesError(contractAddress, caps.Notes)
	}

	return nil
}
