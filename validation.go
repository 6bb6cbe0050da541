package accessctl

import (
	"strconv"

	"github.com/stellar/go/strkey"

	"github.com/stellarkit/accessctl/types"
)

// ValidateAccountAddress checks that address is a valid StrKey account
// address (leading G).
func ValidateAccountAddress(param, address string) error {
	if !strkey.IsValidEd25519PublicKey(address) {
		return NewConfigurationInvalidError(param, address, "not a valid account address")
	}

	return nil
}

// ValidateContractAddress checks that address is a valid StrKey contract
// address (leading C).
func ValidateContractAddress(param, address string) error {
	if _, err := strkey.Decode(strkey.VersionByteContract, address); err != nil {
		return NewConfigurationInvalidError(param, address, "not a valid contract address")
	}

	return nil
}

// ValidateAddress accepts either an account or a contract address. Role
// members and transfer principals may be of either kind.
func ValidateAddress(param, address string) error {
	if strkey.IsValidEd25519PublicKey(address) {
		return nil
	}
	if _, err := strkey.Decode(strkey.VersionByteContract, address); err == nil {
		return nil
	}

	return NewConfigurationInvalidError(param, address, "not a valid account or contract address")
}

// ValidateRoleID checks the Symbol grammar of a role identifier.
func ValidateRoleID(param string, role types.RoleIdentifier) error {
	if err := role.Validate(); err != nil {
		return NewConfigurationInvalidError(param, role.ID, err.Error())
	}

	return nil
}

// ValidateExpirationLedger enforces a strictly future acceptance window. A
// window closing at the current ledger could never be accepted, so equality
// is invalid.
func ValidateExpirationLedger(expiration, current uint32) error {
	if expiration <= current {
		return NewConfigurationInvalidError(
			"liveUntilLedger",
			strconv.FormatUint(uint64(expiration), 10),
			"must be greater than the current ledger "+strconv.FormatUint(uint64(current), 10),
		)
	}

	return nil
}
