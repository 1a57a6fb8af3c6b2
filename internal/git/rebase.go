package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// IsRebaseInProgress checks if a rebase is currently in progress.
// The rebase-merge/rebase-apply state directories are the deciding signal;
// REBASE_HEAD alone is not trusted because it can linger after a finished
// rebase. The directories are located through git's own path query so the
// check survives layout changes (worktrees, GIT_DIR overrides).
func IsRebaseInProgress(ctx context.Context) bool {
	for _, state := range []string{"rebase-merge", "rebase-apply"} {
		path, err := RunGitCommandWithContext(ctx, "rev-parse", "--git-path", state)
		if err != nil {
			continue
		}
		if !filepath.IsAbs(path) && defaultRunner.workingDir != "" {
			path = filepath.Join(defaultRunner.workingDir, path)
		}
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

// RebaseAbort aborts an in-progress rebase
func RebaseAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--abort")
	if err != nil {
		return fmt.Errorf("rebase abort failed: %w", err)
	}
	return nil
}
