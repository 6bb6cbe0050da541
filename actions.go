package accessctl

import "github.com/stellarkit/accessctl/types"

// Soroban spec type names used in assembled actions.
const (
	argTypeAddress = "address"
	argTypeSymbol  = "symbol"
	argTypeU32     = "u32"
)

// AssembleGrantRoleAction builds the unsigned grant_role invocation.
// Assemblers are pure and synchronous; validation happens here, never over
// the network.
func AssembleGrantRoleAction(contractAddress, caller, account string, role types.RoleIdentifier) (types.Action, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.Action{}, err
	}
	if err := ValidateAddress("caller", caller); err != nil {
		return types.Action{}, err
	}
	if err := ValidateAddress("account", account); err != nil {
		return types.Action{}, err
	}
	if err := ValidateRoleID("role", role); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		ContractAddress: contractAddress,
		FunctionName:    "grant_role",
		Args:            []any{caller, account, role.Normalized()},
		ArgTypes:        []string{argTypeAddress, argTypeAddress, argTypeSymbol},
	}, nil
}

// AssembleRevokeRoleAction builds the unsigned revoke_role invocation.
func AssembleRevokeRoleAction(contractAddress, caller, account string, role types.RoleIdentifier) (types.Action, error) {
	action, err := AssembleGrantRoleAction(contractAddress, caller, account, role)
	if err != nil {
		return types.Action{}, err
	}
	action.FunctionName = "revoke_role"

	return action, nil
}

// AssembleRenounceRoleAction builds the unsigned renounce_role invocation,
// by which the caller gives up its own role.
func AssembleRenounceRoleAction(contractAddress, caller string, role types.RoleIdentifier) (types.Action, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.Action{}, err
	}
	if err := ValidateAddress("caller", caller); err != nil {
		return types.Action{}, err
	}
	if err := ValidateRoleID("role", role); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		ContractAddress: contractAddress,
		FunctionName:    "renounce_role",
		Args:            []any{caller, role.Normalized()},
		ArgTypes:        []string{argTypeAddress, argTypeSymbol},
	}, nil
}

// AssembleSetRoleAdminAction builds the unsigned set_role_admin invocation.
func AssembleSetRoleAdminAction(contractAddress string, role, adminRole types.RoleIdentifier) (types.Action, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.Action{}, err
	}
	if err := ValidateRoleID("role", role); err != nil {
		return types.Action{}, err
	}
	if err := ValidateRoleID("adminRole", adminRole); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		ContractAddress: contractAddress,
		FunctionName:    "set_role_admin",
		Args:            []any{role.Normalized(), adminRole.Normalized()},
		ArgTypes:        []string{argTypeSymbol, argTypeSymbol},
	}, nil
}

// AssembleTransferOwnershipAction builds the unsigned transfer_ownership
// invocation. liveUntilLedger is validated against the caller-supplied
// current ledger before anything else.
func AssembleTransferOwnershipAction(contractAddress, newOwner string, liveUntilLedger, currentLedger uint32) (types.Action, error) {
	return assembleTransferAction(contractAddress, "transfer_ownership", "newOwner", newOwner, liveUntilLedger, currentLedger)
}

// AssembleAcceptOwnershipAction builds the unsigned accept_ownership
// invocation issued by the pending owner.
func AssembleAcceptOwnershipAction(contractAddress string) (types.Action, error) {
	return assembleNullaryAction(contractAddress, "accept_ownership")
}

// AssembleRenounceOwnershipAction builds the unsigned renounce_ownership
// invocation. Renunciation is irreversible on chain.
func AssembleRenounceOwnershipAction(contractAddress string) (types.Action, error) {
	return assembleNullaryAction(contractAddress, "renounce_ownership")
}

// AssembleTransferAdminAction builds the unsigned transfer_admin_role
// invocation.
func AssembleTransferAdminAction(contractAddress, newAdmin string, liveUntilLedger, currentLedger uint32) (types.Action, error) {
	return assembleTransferAction(contractAddress, "transfer_admin_role", "newAdmin", newAdmin, liveUntilLedger, currentLedger)
}

// AssembleAcceptAdminTransferAction builds the unsigned
// accept_admin_transfer invocation issued by the pending admin.
func AssembleAcceptAdminTransferAction(contractAddress string) (types.Action, error) {
	return assembleNullaryAction(contractAddress, "accept_admin_transfer")
}

// AssembleRenounceAdminAction builds the unsigned renounce_admin invocation.
func AssembleRenounceAdminAction(contractAddress string) (types.Action, error) {
	return assembleNullaryAction(contractAddress, "renounce_admin")
}

func assembleTransferAction(contractAddress, function, principalParam, principal string, liveUntilLedger, currentLedger uint32) (types.Action, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.Action{}, err
	}
	if err := ValidateAddress(principalParam, principal); err != nil {
		return types.Action{}, err
	}
	if err := ValidateExpirationLedger(liveUntilLedger, currentLedger); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		ContractAddress: contractAddress,
		FunctionName:    function,
		Args:            []any{principal, liveUntilLedger},
		ArgTypes:        []string{argTypeAddress, argTypeU32},
	}, nil
}

func assembleNullaryAction(contractAddress, function string) (types.Action, error) {
	if err := ValidateContractAddress("contractAddress", contractAddress); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		ContractAddress: contractAddress,
		FunctionName:    function,
		Args:            []any{},
		ArgTypes:        []string{},
	}, nil
}
