package rebase

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/testhelpers"
)

func TestEngineRunSuccess(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	base, err := scene.Repo.RevParse("HEAD")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("a.txt", "a\n", "add a")
	require.NoError(t, err)
	oldTip, err := scene.Repo.CommitFile("b.txt", "b\n", "add b")
	require.NoError(t, err)

	commits, err := git.CommitsBetween(base, "HEAD")
	require.NoError(t, err)
	plan, err := BuildRewordPlan(commits, commits[0].SHA)
	require.NoError(t, err)
	config, err := NewScriptFactory().Build(plan, "a fixed subject")
	require.NoError(t, err)
	scriptDir := config.Dir

	guard, err := AcquireStash(ctx, false)
	require.NoError(t, err)

	outcome := NewEngine().Run(ctx, base, config, guard)
	require.Equal(t, OutcomeSuccess, outcome.Status)
	require.Empty(t, outcome.Warnings)
	require.NotEqual(t, oldTip, outcome.NewTipSHA)

	message, err := scene.Repo.CommitMessageBody("HEAD~1")
	require.NoError(t, err)
	require.Equal(t, "a fixed subject", message)

	// Scripts are gone once the outcome is observable
	_, err = os.Stat(scriptDir)
	require.True(t, os.IsNotExist(err))
}

func TestEngineRunConflictRollsBack(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	base, err := scene.Repo.CommitFile("conflict.txt", "base\n", "seed file")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("conflict.txt", "x\n", "set x")
	require.NoError(t, err)
	oldTip, err := scene.Repo.CommitFile("conflict.txt", "y\n", "set y")
	require.NoError(t, err)

	commits, err := git.CommitsBetween(base, "HEAD")
	require.NoError(t, err)
	require.Len(t, commits, 2)

	// Replaying the newer commit first cannot apply cleanly
	plan := &Plan{Lines: []TodoLine{
		{Verb: VerbPick, ShortSHA: commits[1].ShortSHA, Subject: commits[1].Subject},
		{Verb: VerbPick, ShortSHA: commits[0].ShortSHA, Subject: commits[0].Subject},
	}}
	config, err := NewScriptFactory().Build(plan, "")
	require.NoError(t, err)

	guard, err := AcquireStash(ctx, false)
	require.NoError(t, err)

	outcome := NewEngine().Run(ctx, base, config, guard)
	require.Equal(t, OutcomeConflict, outcome.Status)
	require.Contains(t, outcome.ConflictedPaths, "conflict.txt")

	// The abort must leave the repository exactly where it started
	require.False(t, git.IsRebaseInProgress(ctx))
	tip, err := scene.Repo.RevParse("HEAD")
	require.NoError(t, err)
	require.Equal(t, oldTip, tip)
	status, err := scene.Repo.StatusPorcelain()
	require.NoError(t, err)
	require.Empty(t, status)
}

func TestEngineRunFailedWithoutRebaseState(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	oldTip, err := scene.Repo.CommitFile("a.txt", "a\n", "add a")
	require.NoError(t, err)

	plan := &Plan{Lines: []TodoLine{{Verb: VerbPick, ShortSHA: "0123456789ab", Subject: "x"}}}
	config, err := NewScriptFactory().Build(plan, "")
	require.NoError(t, err)

	guard, err := AcquireStash(ctx, false)
	require.NoError(t, err)

	outcome := NewEngine().Run(ctx, "not-a-valid-base", config, guard)
	require.Equal(t, OutcomeFailed, outcome.Status)
	require.Error(t, outcome.Reason)

	tip, err := scene.Repo.RevParse("HEAD")
	require.NoError(t, err)
	require.Equal(t, oldTip, tip)
}

func TestEngineRestoresStashAfterConflict(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	base, err := scene.Repo.CommitFile("conflict.txt", "base\n", "seed file")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("conflict.txt", "x\n", "set x")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("conflict.txt", "y\n", "set y")
	require.NoError(t, err)

	commits, err := git.CommitsBetween(base, "HEAD")
	require.NoError(t, err)
	plan := &Plan{Lines: []TodoLine{
		{Verb: VerbPick, ShortSHA: commits[1].ShortSHA, Subject: commits[1].Subject},
		{Verb: VerbPick, ShortSHA: commits[0].ShortSHA, Subject: commits[0].Subject},
	}}
	config, err := NewScriptFactory().Build(plan, "")
	require.NoError(t, err)

	require.NoError(t, scene.Repo.WriteFile("wip.txt", "in progress\n"))
	guard, err := AcquireStash(ctx, true)
	require.NoError(t, err)

	outcome := NewEngine().Run(ctx, base, config, guard)
	require.Equal(t, OutcomeConflict, outcome.Status)

	// The shelved changes come back even though the rebase was rolled back
	content, err := scene.Repo.ReadFile("wip.txt")
	require.NoError(t, err)
	require.Equal(t, "in progress\n", content)
	count, err := scene.Repo.StashCount()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEngineRestoresStashAfterSuccess(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()
	base, err := scene.Repo.RevParse("HEAD")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("a.txt", "a\n", "add a")
	require.NoError(t, err)

	require.NoError(t, scene.Repo.WriteFile("wip.txt", "in progress\n"))
	guard, err := AcquireStash(ctx, true)
	require.NoError(t, err)
	require.True(t, guard.Stashed())

	commits, err := git.CommitsBetween(base, "HEAD")
	require.NoError(t, err)
	plan, err := BuildRewordPlan(commits, commits[0].SHA)
	require.NoError(t, err)
	config, err := NewScriptFactory().Build(plan, "renamed")
	require.NoError(t, err)

	outcome := NewEngine().Run(ctx, base, config, guard)
	require.Equal(t, OutcomeSuccess, outcome.Status)

	content, err := scene.Repo.ReadFile("wip.txt")
	require.NoError(t, err)
	require.Equal(t, "in progress\n", content)
	count, err := scene.Repo.StashCount()
	require.NoError(t, err)
	require.Zero(t, count)
}
