package accessctl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationInvalidError(t *testing.T) {
	t.Parallel()

	err := NewConfigurationInvalidError("account", "bad", "not a valid account address")
	assert.Equal(t, `invalid account "bad": not a valid account address`, err.Error())

	wrapped := fmt.Errorf("assembling action: %w", err)
	var target *ConfigurationInvalidError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "account", target.Param)
}

func TestUnsupportedContractFeaturesError(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedContractFeaturesError("CCONTRACT", nil)
	assert.Equal(t, "contract CCONTRACT does not support access management", err.Error())

	err = NewUnsupportedContractFeaturesError("CCONTRACT", []string{"a", "b"})
	assert.Equal(t, "contract CCONTRACT does not support access management: a; b", err.Error())
}
