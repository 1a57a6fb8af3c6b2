package rebase

import (
	"context"
	"strings"
	"time"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
)

const autoStashMessage = "workflow: auto-stash before history rewrite"

// StashGuard shelves a dirty working tree for the duration of one operation.
// It pushes at most one stash entry and pops only the entry it pushed,
// exactly once, on every exit path.
type StashGuard struct {
	stashed   bool
	released  bool
	createdAt time.Time
}

// AcquireStash inspects the working tree and shelves it if needed. A clean
// tree yields a no-op guard. A dirty tree without autoStash permission is a
// ValidationError and performs no mutation.
func AcquireStash(ctx context.Context, autoStash bool) (*StashGuard, error) {
	dirty, err := git.IsWorkTreeDirty(ctx)
	if err != nil {
		return nil, err
	}
	if !dirty {
		return &StashGuard{}, nil
	}
	if !autoStash {
		return nil, workflowerrors.WrapValidationError(
			workflowerrors.ErrDirtyWorkTree,
			"working tree has uncommitted changes; commit, stash, or rerun with auto-stash enabled")
	}

	if _, err := git.StashPush(ctx, autoStashMessage); err != nil {
		return nil, err
	}
	return &StashGuard{stashed: true, createdAt: time.Now()}, nil
}

// HasStaleAutoStash reports whether the stash list still carries an entry
// shelved by a previous run that never restored it (crash, kill mid-rebase).
// Such an entry belongs to the user now; popping it here could clobber work.
func HasStaleAutoStash(ctx context.Context) (bool, error) {
	entries, err := git.StashList(ctx)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if strings.Contains(entry, autoStashMessage) {
			return true, nil
		}
	}
	return false, nil
}

// Stashed reports whether the guard shelved any changes
func (g *StashGuard) Stashed() bool {
	return g.stashed
}

// Release restores the shelved changes. It runs the pop at most once; later
// calls are no-ops so the guard can sit on every exit path. A failed restore
// comes back as a CleanupError and must be surfaced as a warning, never as
// the operation's primary result.
func (g *StashGuard) Release(ctx context.Context) error {
	if g.released || !g.stashed {
		g.released = true
		return nil
	}
	g.released = true

	if err := git.StashPop(ctx); err != nil {
		return workflowerrors.NewCleanupError("restore stashed changes", err)
	}
	return nil
}
