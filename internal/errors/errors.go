// Package errors provides sentinel errors and custom error types for the workflow application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrValidation indicates that a request was rejected before any mutation
	ErrValidation = errors.New("validation failed")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrRebaseInProgress indicates that a rebase from a previous run is still in progress
	ErrRebaseInProgress = errors.New("rebase already in progress")

	// ErrDirtyWorkTree indicates uncommitted changes without permission to stash them
	ErrDirtyWorkTree = errors.New("working tree has uncommitted changes")

	// ErrCommitNotFound indicates that a commit identifier does not resolve
	ErrCommitNotFound = errors.New("commit not found")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrAborted indicates that the user declined the confirmation prompt
	ErrAborted = errors.New("operation aborted")
)

// ValidationError represents a rejected request. It is always returned before
// any repository mutation has happened.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// WrapValidationError creates a ValidationError that wraps an underlying error
func WrapValidationError(err error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// RebaseConflictError represents a rebase that stopped on conflicting changes.
// By the time a caller sees this error, the rebase has been aborted and the
// repository restored to its pre-operation state.
type RebaseConflictError struct {
	ConflictedPaths []string
}

func (e *RebaseConflictError) Error() string {
	if len(e.ConflictedPaths) > 0 {
		return fmt.Sprintf("rebase conflict in: %s", strings.Join(e.ConflictedPaths, ", "))
	}
	return "rebase conflict"
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(conflictedPaths []string) *RebaseConflictError {
	return &RebaseConflictError{ConflictedPaths: conflictedPaths}
}

// ProcessError indicates that an external command could not be spawned at all
// (binary missing, permission denied). Nothing ran, so no partial state exists.
type ProcessError struct {
	Command string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError
func NewProcessError(command string, err error) *ProcessError {
	return &ProcessError{Command: command, Err: err}
}

// CleanupError represents a failure during a cleanup step (stash restore,
// temp-directory removal). It is surfaced as a secondary warning and never
// changes the primary outcome of an operation.
type CleanupError struct {
	Step string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup failed (%s): %v", e.Step, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// NewCleanupError creates a new CleanupError
func NewCleanupError(step string, err error) *CleanupError {
	return &CleanupError{Step: step, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
