package rebase

import (
	"context"
	"errors"
	"fmt"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
)

// Engine spawns the rebase process with the generated editor scripts wired in
// and classifies the outcome. On any non-success outcome it aborts the
// in-progress rebase before returning, and on every path it releases the
// stash guard and deletes the script directory.
type Engine struct{}

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run executes `git rebase -i <base>` against the generated scripts and
// blocks until it exits. The returned outcome is final: rollback and cleanup
// have already happened by the time it is observed.
func (e *Engine) Run(ctx context.Context, baseSHA string, config *EditorConfig, guard *StashGuard) (outcome Outcome) {
	defer func() {
		// Stash restore and script-directory removal run on every path.
		// Their failures are warnings and never re-classify the outcome.
		if err := guard.Release(ctx); err != nil {
			outcome.Warnings = append(outcome.Warnings, err)
		}
		if err := config.Cleanup(); err != nil {
			outcome.Warnings = append(outcome.Warnings, err)
		}
	}()

	_, runErr := git.RunGitCommandWithEnv(ctx, config.Env(), "rebase", "-i", baseSHA)
	if runErr == nil {
		newTip, err := git.ResolveSHA("HEAD")
		if err != nil {
			return Outcome{Status: OutcomeFailed, Reason: fmt.Errorf("rebase finished but HEAD does not resolve: %w", err)}
		}
		return Outcome{Status: OutcomeSuccess, NewTipSHA: newTip}
	}

	var processErr *workflowerrors.ProcessError
	if errors.As(runErr, &processErr) {
		// git never started; there is nothing to roll back
		return Outcome{Status: OutcomeFailed, Reason: runErr}
	}

	if git.IsRebaseInProgress(ctx) {
		// Conflicted paths must be read before the abort wipes them
		paths, err := git.GetUnmergedFiles(ctx)
		if err != nil {
			paths = nil
		}
		outcome = Outcome{Status: OutcomeConflict, ConflictedPaths: paths, Reason: runErr}
		if err := git.RebaseAbort(ctx); err != nil {
			outcome.Warnings = append(outcome.Warnings, workflowerrors.NewCleanupError("abort rebase", err))
		}
		return outcome
	}

	return Outcome{Status: OutcomeFailed, Reason: runErr}
}
