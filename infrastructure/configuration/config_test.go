package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfiguration is a basic smoke test over the defaults applied when no
// config file is present.
func TestConfiguration(t *testing.T) {
	t.Run("configuration_struct_exists", func(t *testing.T) {
		require.NotNil(t, &C, "Configuration should not be nil")
		require.NotNil(t, &C.App, "App configuration should exist")
		require.NotNil(t, &C.OAuth, "OAuth configuration should exist")
	})

	t.Run("defaults_applied", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "Port default should be applied")
		require.NotEmpty(t, C.Vault.Path, "Vault path default should be applied")
		require.NotEmpty(t, C.Graph.Version, "Graph version default should be applied")
		require.NotEmpty(t, C.Display.Timezone, "Display timezone default should be applied")
	})
}
