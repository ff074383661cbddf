package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagesCmd_ListsConfiguredStages(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runRoot(t, "", "stages")
	require.NoError(t, err)
	assert.Contains(t, out, "1. limit")
}

func TestStagesCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := runRoot(t, "", "stages")
	assert.ErrorIs(t, err, errCompletionNotConfigured)
}
