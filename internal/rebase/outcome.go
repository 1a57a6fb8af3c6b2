package rebase

// OutcomeStatus classifies how a rebase run ended
type OutcomeStatus int

const (
	// OutcomeSuccess indicates the rebase completed and the branch tip moved
	OutcomeSuccess OutcomeStatus = iota
	// OutcomeConflict indicates the rebase stopped on conflicting changes
	// and has been rolled back
	OutcomeConflict
	// OutcomeFailed indicates the rebase failed for an unexpected reason
	// and has been rolled back
	OutcomeFailed
)

// Outcome is the result of one rebase run. Conflict and Failed both mean
// rollback already completed by the time the caller sees the outcome.
type Outcome struct {
	Status          OutcomeStatus
	NewTipSHA       string
	ConflictedPaths []string
	Reason          error

	// Warnings collects secondary cleanup failures (stash restore, script
	// directory removal). They never change Status.
	Warnings []error
}
