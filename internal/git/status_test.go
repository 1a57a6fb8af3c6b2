package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/testhelpers"
)

func TestIsWorkTreeDirty(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	dirty, err := git.IsWorkTreeDirty(ctx)
	require.NoError(t, err)
	require.False(t, dirty)

	// Untracked file
	require.NoError(t, scene.Repo.WriteFile("new.txt", "new\n"))
	dirty, err = git.IsWorkTreeDirty(ctx)
	require.NoError(t, err)
	require.True(t, dirty)

	// Staged change
	require.NoError(t, scene.Repo.RunGitCommand("add", "new.txt"))
	dirty, err = git.IsWorkTreeDirty(ctx)
	require.NoError(t, err)
	require.True(t, dirty)

	// Unstaged change to a tracked file
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "add new.txt"))
	require.NoError(t, scene.Repo.WriteFile("new.txt", "edited\n"))
	dirty, err = git.IsWorkTreeDirty(ctx)
	require.NoError(t, err)
	require.True(t, dirty)
}

func TestGetUnmergedFilesCleanTree(t *testing.T) {
	testhelpers.NewScene(t)

	files, err := git.GetUnmergedFiles(context.Background())
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestIsCommitInRemoteWithoutRemotes(t *testing.T) {
	scene := testhelpers.NewScene(t)
	sha, err := scene.Repo.RevParse("HEAD")
	require.NoError(t, err)

	pushed, err := git.IsCommitInRemote(context.Background(), sha)
	require.NoError(t, err)
	require.False(t, pushed)
}

func TestStashPushAndPop(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	require.NoError(t, scene.Repo.WriteFile("wip.txt", "wip\n"))

	_, err := git.StashPush(ctx, "test stash")
	require.NoError(t, err)

	count, err := git.StashCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	status, err := scene.Repo.StatusPorcelain()
	require.NoError(t, err)
	require.Empty(t, status)

	require.NoError(t, git.StashPop(ctx))
	content, err := scene.Repo.ReadFile("wip.txt")
	require.NoError(t, err)
	require.Equal(t, "wip\n", content)
}

func TestIsRebaseInProgressCleanRepo(t *testing.T) {
	testhelpers.NewScene(t)

	require.False(t, git.IsRebaseInProgress(context.Background()))
}
