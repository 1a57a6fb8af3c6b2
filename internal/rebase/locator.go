package rebase

import (
	"context"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
)

type targetKind int

const (
	targetSingle targetKind = iota
	targetRange
	targetBranch
)

// Target identifies the commits an operation applies to
type Target struct {
	kind targetKind
	refs []string
}

// SingleCommit targets one commit (reword)
func SingleCommit(ref string) Target {
	return Target{kind: targetSingle, refs: []string{ref}}
}

// CommitRange targets an explicit list of commits ordered oldest to newest (squash)
func CommitRange(refs []string) Target {
	return Target{kind: targetRange, refs: refs}
}

// BranchCommits targets every commit on the current branch since it diverged
// from the trunk branch
func BranchCommits() Target {
	return Target{kind: targetBranch}
}

// Located is the resolved form of a Target
type Located struct {
	// Commits ordered oldest first. Length 1 for a single-commit target.
	Commits []git.CommitRecord
	// BaseSHA is the parent of the oldest commit, the point the rebase
	// replays from.
	BaseSHA string
}

// Locator resolves targets against the repository's commit graph. All of its
// queries are read-only.
type Locator struct {
	// Trunk is the base branch used to find the divergence point for
	// branch-wide targets.
	Trunk string
}

// Locate resolves a target into an ordered commit list and its rebase base.
// It fails with a ValidationError when the target does not resolve, is not a
// contiguous ancestry chain, contains a merge commit, or is not reachable
// from the current branch tip.
func (l *Locator) Locate(ctx context.Context, target Target) (*Located, error) {
	switch target.kind {
	case targetSingle:
		return l.locateSingle(target.refs[0])
	case targetRange:
		return l.locateRange(target.refs)
	default:
		return l.locateBranch()
	}
}

func (l *Locator) locateSingle(ref string) (*Located, error) {
	record, err := git.GetCommitRecord(ref)
	if err != nil {
		return nil, err
	}

	if record.IsMerge() {
		return nil, workflowerrors.NewValidationError("cannot rewrite merge commit %s", record.ShortSHA)
	}

	reachable, err := git.IsAncestor(record.SHA, "HEAD")
	if err != nil {
		return nil, err
	}
	if !reachable {
		return nil, workflowerrors.NewValidationError("commit %s is not reachable from the current branch tip", record.ShortSHA)
	}

	base, err := git.GetParentSHA(record.SHA)
	if err != nil {
		return nil, err
	}

	return &Located{Commits: []git.CommitRecord{record}, BaseSHA: base}, nil
}

func (l *Locator) locateRange(refs []string) (*Located, error) {
	if len(refs) == 0 {
		return nil, workflowerrors.NewValidationError("no commits selected")
	}

	oldest, err := git.GetCommitRecord(refs[0])
	if err != nil {
		return nil, err
	}
	newest, err := git.GetCommitRecord(refs[len(refs)-1])
	if err != nil {
		return nil, err
	}

	base, err := git.GetParentSHA(oldest.SHA)
	if err != nil {
		return nil, err
	}

	// Walking the first-parent chain from newest back to the base yields the
	// only contiguous chain that can match the requested range.
	chain, err := git.CommitsBetween(base, newest.SHA)
	if err != nil {
		return nil, err
	}
	if len(chain) != len(refs) {
		return nil, workflowerrors.NewValidationError("commits do not form a contiguous range")
	}
	for i, ref := range refs {
		record, err := git.GetCommitRecord(ref)
		if err != nil {
			return nil, err
		}
		if record.SHA != chain[i].SHA {
			return nil, workflowerrors.NewValidationError("commits do not form a contiguous range")
		}
		if record.IsMerge() {
			return nil, workflowerrors.NewValidationError("cannot rewrite merge commit %s", record.ShortSHA)
		}
	}

	reachable, err := git.IsAncestor(newest.SHA, "HEAD")
	if err != nil {
		return nil, err
	}
	if !reachable {
		return nil, workflowerrors.NewValidationError("commit %s is not reachable from the current branch tip", newest.ShortSHA)
	}

	return &Located{Commits: chain, BaseSHA: base}, nil
}

func (l *Locator) locateBranch() (*Located, error) {
	base, err := git.GetMergeBase(l.Trunk, "HEAD")
	if err != nil {
		return nil, workflowerrors.WrapValidationError(err, "cannot find where the current branch diverged from %s", l.Trunk)
	}

	commits, err := git.CommitsBetween(base, "HEAD")
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, workflowerrors.NewValidationError("no commits on this branch since it diverged from %s", l.Trunk)
	}
	for _, record := range commits {
		if record.IsMerge() {
			return nil, workflowerrors.NewValidationError("cannot rewrite merge commit %s", record.ShortSHA)
		}
	}

	return &Located{Commits: commits, BaseSHA: base}, nil
}
