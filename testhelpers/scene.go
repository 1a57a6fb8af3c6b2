package testhelpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zevwings/workflow/internal/git"
)

// Scene is a test environment with a real git repository. All package-level
// git helpers are pointed at the scene's repository for the duration of the
// test and restored afterwards.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// NewScene creates a git repository in a temp directory with one initial
// commit on main
func NewScene(t *testing.T) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	require.NoError(t, err)

	_, err = repo.CommitFile("README.md", "scene\n", "initial commit")
	require.NoError(t, err)

	previousDir := git.GetWorkingDir()
	git.SetWorkingDir(dir)
	t.Cleanup(func() {
		git.SetWorkingDir(previousDir)
	})

	// Keep prompts and log files out of the test environment
	t.Setenv("WORKFLOW_NON_INTERACTIVE", "1")
	t.Setenv("WORKFLOW_LOG_FILE", filepath.Join(t.TempDir(), "workflow.log"))
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	return &Scene{Dir: dir, Repo: repo}
}
