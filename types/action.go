package types

// Action is an unsigned contract invocation assembled for an external
// signing and broadcast collaborator. This module never signs or submits.
type Action struct {
	ContractAddress string   `json:"contractAddress"`
	FunctionName    string   `json:"functionName"`
	Args            []any    `json:"args"`
	ArgTypes        []string `json:"argTypes"`
}
