package actions

import (
	"context"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/internal/output"
	"github.com/zevwings/workflow/internal/rebase"
)

// RewordOptions are options for the reword command
type RewordOptions struct {
	// Commit identifies the commit whose message is replaced. It does not
	// need to be the branch tip.
	Commit string
	// Message is the replacement commit message, applied verbatim.
	Message     string
	AutoStash   bool
	SkipConfirm bool
	Trunk       string
	Splog       *output.Splog
}

// RewordHistoryResult is the outcome of a successful reword
type RewordHistoryResult struct {
	OriginalSHA string
	NewTipSHA   string
	WasStashed  bool
}

// RewordAction replaces the message of an arbitrary commit by driving a
// scripted interactive rebase. Every descendant of the target is replayed
// with an identical diff; only identifiers change. On conflict or failure
// the repository is rolled back before the error is returned.
func RewordAction(ctx context.Context, opts RewordOptions) (*RewordHistoryResult, error) {
	splog := opts.Splog

	if opts.Commit == "" {
		return nil, workflowerrors.NewValidationError("no commit specified")
	}
	if opts.Message == "" {
		return nil, workflowerrors.NewValidationError("no replacement message specified")
	}

	if err := ensureNoRebaseInProgress(ctx); err != nil {
		return nil, err
	}

	locator := &rebase.Locator{Trunk: opts.Trunk}
	located, err := locator.Locate(ctx, rebase.SingleCommit(opts.Commit))
	if err != nil {
		return nil, err
	}
	target := located.Commits[0]

	preview := NewRewordPreview(ctx, target, opts.Message)
	splog.Page(preview.Format())

	confirmed, err := confirmProceed("Reword this commit?", opts.SkipConfirm)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, workflowerrors.ErrAborted
	}

	// Descendants of the target are replayed from a flat todo, so the whole
	// chain up to the branch tip has to be linear.
	allCommits, err := git.CommitsBetween(located.BaseSHA, "HEAD")
	if err != nil {
		return nil, err
	}
	if err := ensureLinearChain(allCommits); err != nil {
		return nil, err
	}

	guard, err := rebase.AcquireStash(ctx, opts.AutoStash)
	if err != nil {
		return nil, err
	}

	plan, err := rebase.BuildRewordPlan(allCommits, target.SHA)
	if err != nil {
		releaseOnError(ctx, guard, splog.Warn)
		return nil, err
	}

	factory := rebase.NewScriptFactory()
	editorConfig, err := factory.Build(plan, opts.Message)
	if err != nil {
		releaseOnError(ctx, guard, splog.Warn)
		return nil, err
	}

	outcome := rebase.NewEngine().Run(ctx, located.BaseSHA, editorConfig, guard)
	for _, warning := range outcome.Warnings {
		splog.Warn("%v", warning)
	}

	switch outcome.Status {
	case rebase.OutcomeSuccess:
		splog.Info("Reworded %s; branch tip is now %s.", output.ColorSHA(target.ShortSHA), output.ColorSHA(outcome.NewTipSHA[:12]))
		if preview.IsPushed {
			splog.Warn("The reworded commit was already on the remote; run `git push --force` to update it.")
		}
		return &RewordHistoryResult{
			OriginalSHA: target.SHA,
			NewTipSHA:   outcome.NewTipSHA,
			WasStashed:  guard.Stashed(),
		}, nil
	case rebase.OutcomeConflict:
		return nil, workflowerrors.NewRebaseConflictError(outcome.ConflictedPaths)
	default:
		return nil, outcome.Reason
	}
}
