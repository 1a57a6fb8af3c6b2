package git

import (
	"context"
	"fmt"
	"strings"
)

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func HasUnstagedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func HasUntrackedFiles(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// IsWorkTreeDirty reports whether the working tree has staged, unstaged, or
// untracked changes.
func IsWorkTreeDirty(ctx context.Context) (bool, error) {
	staged, err := HasStagedChanges(ctx)
	if err != nil {
		return false, err
	}
	if staged {
		return true, nil
	}

	unstaged, err := HasUnstagedChanges(ctx)
	if err != nil {
		return false, err
	}
	if unstaged {
		return true, nil
	}

	return HasUntrackedFiles(ctx)
}

// GetUnmergedFiles returns the paths of files with unresolved conflicts
func GetUnmergedFiles(ctx context.Context) ([]string, error) {
	lines, err := RunGitCommandLinesWithContext(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unmerged files: %w", err)
	}
	return lines, nil
}

// IsCommitInRemote checks whether a commit is contained in any remote-tracking
// branch, i.e. it has already been pushed.
func IsCommitInRemote(ctx context.Context, sha string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "branch", "-r", "--contains", sha)
	if err != nil {
		// No remotes (or unborn ref) means nothing was pushed
		return false, nil
	}
	return strings.TrimSpace(output) != "", nil
}

// StashList returns the entries on the stash list, newest first
func StashList(ctx context.Context) ([]string, error) {
	lines, err := RunGitCommandLinesWithContext(ctx, "stash", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list stash entries: %w", err)
	}
	return lines, nil
}

// StashCount returns the number of entries on the stash list
func StashCount(ctx context.Context) (int, error) {
	lines, err := StashList(ctx)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}
