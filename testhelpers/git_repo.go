// Package testhelpers builds real git repositories in temporary directories
// for integration-style tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a git repository created for a test
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in the specified directory
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and pin behavior
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes a file inside the repository working tree
func (r *GitRepo) WriteFile(name, content string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// ReadFile reads a file from the repository working tree
func (r *GitRepo) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CommitFile writes a file, stages it, and commits it with the given message.
// Returns the SHA of the new commit.
func (r *GitRepo) CommitFile(name, content, message string) (string, error) {
	if err := r.WriteFile(name, content); err != nil {
		return "", err
	}
	if err := r.RunGitCommand("add", name); err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", name, err)
	}
	if err := r.RunGitCommand("commit", "-m", message); err != nil {
		return "", fmt.Errorf("failed to commit %s: %w", name, err)
	}
	return r.RevParse("HEAD")
}

// DeleteFileCommit removes a file and commits the deletion
func (r *GitRepo) DeleteFileCommit(name, message string) (string, error) {
	if err := r.RunGitCommand("rm", name); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", name, err)
	}
	if err := r.RunGitCommand("commit", "-m", message); err != nil {
		return "", fmt.Errorf("failed to commit removal of %s: %w", name, err)
	}
	return r.RevParse("HEAD")
}

// RevParse resolves a ref to its full SHA
func (r *GitRepo) RevParse(ref string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", ref)
}

// CheckoutNewBranch creates and checks out a branch
func (r *GitRepo) CheckoutNewBranch(name string) error {
	return r.RunGitCommand("checkout", "-b", name)
}

// Checkout checks out an existing ref
func (r *GitRepo) Checkout(ref string) error {
	return r.RunGitCommand("checkout", ref)
}

// Merge merges a ref into the current branch with a merge commit
func (r *GitRepo) Merge(ref, message string) error {
	return r.RunGitCommand("merge", "--no-ff", "-m", message, ref)
}

// CommitMessages returns the subjects of all commits reachable from HEAD,
// newest first
func (r *GitRepo) CommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// CommitMessageBody returns the full message of a commit
func (r *GitRepo) CommitMessageBody(ref string) (string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "-1", "--format=%B", ref)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(output, "\n"), nil
}

// ChangedFiles returns the files touched by a commit
func (r *GitRepo) ChangedFiles(ref string) ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("show", "--name-only", "--format=", ref)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// StashCount returns the number of entries on the stash list
func (r *GitRepo) StashCount() (int, error) {
	output, err := r.RunGitCommandAndGetOutput("stash", "list")
	if err != nil {
		return 0, err
	}
	if output == "" {
		return 0, nil
	}
	return len(strings.Split(output, "\n")), nil
}

// StatusPorcelain returns `git status --porcelain` output
func (r *GitRepo) StatusPorcelain() (string, error) {
	return r.RunGitCommandAndGetOutput("status", "--porcelain")
}

// IsAncestor reports whether ancestor is reachable from descendant
func (r *GitRepo) IsAncestor(ancestor, descendant string) bool {
	err := r.RunGitCommand("merge-base", "--is-ancestor", ancestor, descendant)
	return err == nil
}
