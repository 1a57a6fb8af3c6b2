package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zevwings/workflow/internal/config"
	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/testhelpers"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd("test", "none", "unknown")
	root.SetArgs(args)
	return root.Execute()
}

func TestConfigTrunkRoundTrip(t *testing.T) {
	scene := testhelpers.NewScene(t)

	require.NoError(t, runCommand(t, "config", "trunk", "develop"))

	cfg, err := config.GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "develop", cfg.GetTrunk())
}

func TestConfigAutoStash(t *testing.T) {
	scene := testhelpers.NewScene(t)

	require.NoError(t, runCommand(t, "config", "auto-stash", "on"))
	cfg, err := config.GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.True(t, cfg.GetAutoStash())

	require.NoError(t, runCommand(t, "config", "auto-stash", "off"))
	cfg, err = config.GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.False(t, cfg.GetAutoStash())
}

func TestConfigAutoStashRejectsBadValue(t *testing.T) {
	testhelpers.NewScene(t)

	err := runCommand(t, "config", "auto-stash", "maybe")
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
}
