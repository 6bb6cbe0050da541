package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// OwnerRoleSentinel marks ownership events in the history index. It is not a
// real role and is excluded from role discovery.
const OwnerRoleSentinel = "OWNER"

// MaxRoleIDLength is the Symbol length limit enforced on chain.
const MaxRoleIDLength = 32

var roleIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RoleIdentifier names a permission role. ID is the Symbol value used on
// chain and in indexer queries; Label is free-form display text.
type RoleIdentifier struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// NewRoleIdentifier creates a RoleIdentifier from a raw ID and display label.
func NewRoleIdentifier(id, label string) RoleIdentifier {
	return RoleIdentifier{ID: strings.TrimSpace(id), Label: label}
}

// Normalized returns the canonical form of the role ID. Two identifiers are
// equal iff their normalized IDs match.
func (r RoleIdentifier) Normalized() string {
	return strings.TrimSpace(r.ID)
}

// Equal reports whether two identifiers name the same role.
func (r RoleIdentifier) Equal(other RoleIdentifier) bool {
	return r.Normalized() == other.Normalized()
}

// Validate checks the Symbol grammar constraints of the role ID.
func (r RoleIdentifier) Validate() error {
	id := r.Normalized()
	if id == "" {
		return errors.New("role id is empty")
	}
	if len(id) > MaxRoleIDLength {
		return fmt.Errorf("role id %q exceeds %d characters", id, MaxRoleIDLength)
	}
	if !roleIDPattern.MatchString(id) {
		return fmt.Errorf("role id %q is not a valid symbol", id)
	}

	return nil
}
