package rebase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/testhelpers"
)

func TestAcquireStashCleanTree(t *testing.T) {
	testhelpers.NewScene(t)
	ctx := context.Background()

	guard, err := AcquireStash(ctx, false)
	require.NoError(t, err)
	require.False(t, guard.Stashed())
	require.NoError(t, guard.Release(ctx))
}

func TestAcquireStashDirtyTreeWithoutPermission(t *testing.T) {
	scene := testhelpers.NewScene(t)
	require.NoError(t, scene.Repo.WriteFile("pending.txt", "uncommitted\n"))

	_, err := AcquireStash(context.Background(), false)
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
	require.ErrorIs(t, err, workflowerrors.ErrDirtyWorkTree)

	// The refusal must not touch the working tree or the stash
	content, err := scene.Repo.ReadFile("pending.txt")
	require.NoError(t, err)
	require.Equal(t, "uncommitted\n", content)
	count, err := scene.Repo.StashCount()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestAcquireStashShelvesAndRestores(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	require.NoError(t, scene.Repo.WriteFile("README.md", "edited\n"))

	guard, err := AcquireStash(ctx, true)
	require.NoError(t, err)
	require.True(t, guard.Stashed())

	status, err := scene.Repo.StatusPorcelain()
	require.NoError(t, err)
	require.Empty(t, status, "working tree must be clean while shelved")
	count, err := scene.Repo.StashCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, guard.Release(ctx))

	content, err := scene.Repo.ReadFile("README.md")
	require.NoError(t, err)
	require.Equal(t, "edited\n", content)
	count, err = scene.Repo.StashCount()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestHasStaleAutoStash(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	stale, err := HasStaleAutoStash(ctx)
	require.NoError(t, err)
	require.False(t, stale)

	// An ordinary user stash is not ours to worry about
	require.NoError(t, scene.Repo.WriteFile("wip.txt", "wip\n"))
	require.NoError(t, scene.Repo.RunGitCommand("stash", "push", "-u", "-m", "my own stash"))
	stale, err = HasStaleAutoStash(ctx)
	require.NoError(t, err)
	require.False(t, stale)

	// An entry with the guard's message means a previous run never restored it
	require.NoError(t, scene.Repo.WriteFile("more.txt", "more\n"))
	require.NoError(t, scene.Repo.RunGitCommand("stash", "push", "-u", "-m", autoStashMessage))
	stale, err = HasStaleAutoStash(ctx)
	require.NoError(t, err)
	require.True(t, stale)
}

func TestStashGuardReleasesExactlyOnce(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	require.NoError(t, scene.Repo.WriteFile("README.md", "edited\n"))

	guard, err := AcquireStash(ctx, true)
	require.NoError(t, err)
	require.NoError(t, guard.Release(ctx))

	// A second release must not pop anything else off the stash
	require.NoError(t, scene.Repo.RunGitCommand("stash", "push", "-u", "-m", "unrelated"))
	require.NoError(t, guard.Release(ctx))
	count, err := scene.Repo.StashCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
