package actions

import (
	"context"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/internal/rebase"
)

// ensureNoRebaseInProgress fails fast when a rebase from a previous run (or
// an out-of-band interruption) is still underway. Proceeding would corrupt
// repository state.
func ensureNoRebaseInProgress(ctx context.Context) error {
	if git.IsRebaseInProgress(ctx) {
		return workflowerrors.WrapValidationError(
			workflowerrors.ErrRebaseInProgress,
			"a rebase is already in progress; finish it with `git rebase --continue` or `git rebase --abort`")
	}

	// A leftover auto-stash means a previous run never restored the user's
	// changes. Only the user can decide what to do with that entry.
	stale, err := rebase.HasStaleAutoStash(ctx)
	if err != nil {
		return err
	}
	if stale {
		return workflowerrors.NewValidationError(
			"the stash holds an auto-stash entry from an interrupted run; inspect it with `git stash list` and restore it with `git stash pop` (or drop it) before rewriting history")
	}
	return nil
}

// ensureLinearChain rejects rewrites whose replay would run through a merge
// commit. git cannot replay a merge from a flat todo, so without this check
// the failure would surface mid-rebase instead of before any mutation.
func ensureLinearChain(commits []git.CommitRecord) error {
	for _, commit := range commits {
		if commit.IsMerge() {
			return workflowerrors.NewValidationError(
				"history between the rebase base and the branch tip contains merge commit %s; rewrite only linear history", commit.ShortSHA)
		}
	}
	return nil
}

// releaseOnError releases a stash guard when an operation bails out between
// stash acquisition and the engine run. Restore failures are demoted to
// warnings so the original error stays primary.
func releaseOnError(ctx context.Context, guard *rebase.StashGuard, warn func(format string, args ...interface{})) {
	if err := guard.Release(ctx); err != nil {
		warn("%v", err)
	}
}
