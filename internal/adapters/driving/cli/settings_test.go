package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Address: :8080")
	assert.Contains(t, out, "Allowed origins: *")
	assert.Contains(t, out, "Rate limit: 20/s, burst 40")
	assert.Contains(t, out, "Backend: sqlite")
	assert.Contains(t, out, "Data directory: (default)")
	assert.Contains(t, out, "storage.data_dir")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "server.rate_limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Set server.rate_limit = 0")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate limit: disabled")
}

func TestSettingsSet_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "storage.backend", "postgres")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "server.addr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettings_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, err := execute(t, "settings", "show")
	assert.ErrorIs(t, err, errNoSettingsService)

	_, err = execute(t, "settings", "set", "a", "b")
	assert.ErrorIs(t, err, errNoSettingsService)
}
