package git

import (
	"context"
	"fmt"
)

// StashPush pushes current changes (including untracked files) to the stash
func StashPush(ctx context.Context, message string) (string, error) {
	args := []string{"stash", "push", "-u"}
	if message != "" {
		args = append(args, "-m", message)
	}
	output, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("stash push failed: %w", err)
	}
	return output, nil
}

// StashPop pops the most recent stash
func StashPop(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "stash", "pop")
	if err != nil {
		return fmt.Errorf("stash pop failed: %w", err)
	}
	return nil
}
