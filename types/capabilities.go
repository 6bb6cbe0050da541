package types

// Capabilities is the detected access-control surface of a contract. It is
// recomputed from the function inventory on every call and never persisted.
type Capabilities struct {
	HasOwnable              bool     `json:"hasOwnable"`
	HasAccessControl        bool     `json:"hasAccessControl"`
	HasEnumerableRoles      bool     `json:"hasEnumerableRoles"`
	HasTwoStepOwnable       bool     `json:"hasTwoStepOwnable"`
	HasTwoStepAdmin         bool     `json:"hasTwoStepAdmin"`
	SupportsHistory         bool     `json:"supportsHistory"`
	VerifiedAgainstStandard bool     `json:"verifiedAgainstStandard"`
	Notes                   []string `json:"notes,omitempty"`
}

// SupportsAccessManagement reports whether either of the two known patterns
// was detected.
func (c Capabilities) SupportsAccessManagement() bool {
	return c.HasOwnable || c.HasAccessControl
}
