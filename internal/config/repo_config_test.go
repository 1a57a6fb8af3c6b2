package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zevwings/workflow/testhelpers"
)

func TestGetRepoConfigMissingFile(t *testing.T) {
	scene := testhelpers.NewScene(t)

	cfg, err := GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, DefaultTrunk, cfg.GetTrunk())
	require.False(t, cfg.GetAutoStash())
}

func TestRepoConfigRoundTrip(t *testing.T) {
	scene := testhelpers.NewScene(t)

	trunk := "develop"
	autoStash := true
	require.NoError(t, WriteRepoConfig(scene.Dir, &RepoConfig{
		Trunk:     &trunk,
		AutoStash: &autoStash,
	}))

	cfg, err := GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "develop", cfg.GetTrunk())
	require.True(t, cfg.GetAutoStash())
}

func TestRepoConfigEmptyTrunkFallsBack(t *testing.T) {
	empty := ""
	cfg := &RepoConfig{Trunk: &empty}
	require.Equal(t, DefaultTrunk, cfg.GetTrunk())
}
