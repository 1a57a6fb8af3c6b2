package actions

import (
	"context"
	"strings"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/internal/output"
	"github.com/zevwings/workflow/internal/rebase"
)

// SquashOptions are options for the squash command
type SquashOptions struct {
	// Commits is an explicit contiguous range of commit identifiers ordered
	// oldest to newest. Empty means every commit on the current branch since
	// it diverged from the trunk.
	Commits []string
	// Message is the combined commit message. Empty derives one by
	// concatenating the original messages oldest first.
	Message     string
	AutoStash   bool
	SkipConfirm bool
	Trunk       string
	Splog       *output.Splog
}

// SquashResult is the outcome of a successful squash
type SquashResult struct {
	NewTipSHA     string
	SquashedCount int
	WasStashed    bool
}

// SquashAction combines a contiguous range of commits into one by driving a
// scripted interactive rebase. On conflict or failure the repository is
// rolled back before the error is returned.
func SquashAction(ctx context.Context, opts SquashOptions) (*SquashResult, error) {
	splog := opts.Splog

	if err := ensureNoRebaseInProgress(ctx); err != nil {
		return nil, err
	}

	target := rebase.BranchCommits()
	if len(opts.Commits) > 0 {
		target = rebase.CommitRange(opts.Commits)
	} else if branch, err := git.GetCurrentBranch(); err == nil {
		splog.Debug("no range given; squashing %s since it diverged from %s",
			output.ColorBranch(branch), output.ColorBranch(opts.Trunk))
	}

	locator := &rebase.Locator{Trunk: opts.Trunk}
	located, err := locator.Locate(ctx, target)
	if err != nil {
		return nil, err
	}
	if len(located.Commits) < 2 {
		return nil, workflowerrors.NewValidationError("squash needs at least two commits, found %d", len(located.Commits))
	}

	message := opts.Message
	if message == "" {
		message = combineMessages(located.Commits)
	}

	preview := NewSquashPreview(ctx, located.Commits, message, located.BaseSHA)
	splog.Page(preview.Format())

	confirmed, err := confirmProceed("Squash these commits?", opts.SkipConfirm)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, workflowerrors.ErrAborted
	}

	// The plan covers everything between the base and the branch tip so
	// commits above the squashed range are replayed unchanged. The whole
	// chain has to be linear, not just the squashed range.
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

	selected := make(map[string]bool, len(located.Commits))
	for _, commit := range located.Commits {
		selected[commit.SHA] = true
	}

	plan, err := rebase.BuildSquashPlan(allCommits, selected)
	if err != nil {
		releaseOnError(ctx, guard, splog.Warn)
		return nil, err
	}

	factory := rebase.NewScriptFactory()
	editorConfig, err := factory.Build(plan, message)
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
		splog.Info("Squashed %d commits into %s.", len(located.Commits), output.ColorSHA(outcome.NewTipSHA[:12]))
		if preview.IsPushed {
			splog.Warn("The squashed commits were already on the remote; run `git push --force` to update it.")
		}
		return &SquashResult{
			NewTipSHA:     outcome.NewTipSHA,
			SquashedCount: len(located.Commits),
			WasStashed:    guard.Stashed(),
		}, nil
	case rebase.OutcomeConflict:
		return nil, workflowerrors.NewRebaseConflictError(outcome.ConflictedPaths)
	default:
		return nil, outcome.Reason
	}
}

// combineMessages derives the squashed commit message by concatenating the
// original messages oldest first, separated by blank lines.
func combineMessages(commits []git.CommitRecord) string {
	parts := make([]string, 0, len(commits))
	for _, commit := range commits {
		parts = append(parts, commit.Message())
	}
	return strings.Join(parts, "\n\n")
}
