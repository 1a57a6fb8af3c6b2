package rebase

import (
	"fmt"
	"strings"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
)

// Verb is a rebase todo instruction
type Verb string

const (
	// VerbPick keeps a commit as-is
	VerbPick Verb = "pick"
	// VerbSquash folds a commit into the previous one
	VerbSquash Verb = "squash"
	// VerbReword keeps a commit's changes but replaces its message
	VerbReword Verb = "reword"
)

// TodoLine is one line of a rebase plan
type TodoLine struct {
	Verb     Verb
	ShortSHA string
	Subject  string
}

// Plan is the full rebase todo that replaces git's interactive plan
type Plan struct {
	Lines []TodoLine
}

// Render produces the todo file content in git's `<verb> <id> <subject>` format
func (p *Plan) Render() string {
	var b strings.Builder
	for _, line := range p.Lines {
		fmt.Fprintf(&b, "%s %s %s\n", line.Verb, line.ShortSHA, line.Subject)
	}
	return b.String()
}

// BuildSquashPlan builds a plan over every commit between the rebase base and
// the branch tip (oldest first). The first commit keeps pick, the rest of the
// selected range becomes squash, and commits above the range keep pick so
// they are replayed unchanged.
func BuildSquashPlan(commits []git.CommitRecord, selected map[string]bool) (*Plan, error) {
	if len(commits) == 0 {
		return nil, workflowerrors.NewValidationError("no commits to rebase")
	}
	if !selected[commits[0].SHA] {
		return nil, workflowerrors.NewValidationError("squash range must start at the rebase base")
	}

	plan := &Plan{Lines: make([]TodoLine, 0, len(commits))}
	first := true
	for _, commit := range commits {
		verb := VerbPick
		if selected[commit.SHA] && !first {
			verb = VerbSquash
		}
		first = false
		plan.Lines = append(plan.Lines, TodoLine{
			Verb:     verb,
			ShortSHA: commit.ShortSHA,
			Subject:  commit.Subject,
		})
	}
	return plan, nil
}

// BuildRewordPlan builds a plan over every commit between the rebase base and
// the branch tip (oldest first), marking exactly the target commit for
// message replacement.
func BuildRewordPlan(commits []git.CommitRecord, targetSHA string) (*Plan, error) {
	if len(commits) == 0 {
		return nil, workflowerrors.NewValidationError("no commits to rebase")
	}

	plan := &Plan{Lines: make([]TodoLine, 0, len(commits))}
	found := false
	for _, commit := range commits {
		verb := VerbPick
		if commit.SHA == targetSHA {
			verb = VerbReword
			found = true
		}
		plan.Lines = append(plan.Lines, TodoLine{
			Verb:     verb,
			ShortSHA: commit.ShortSHA,
			Subject:  commit.Subject,
		})
	}
	if !found {
		return nil, workflowerrors.NewValidationError("target commit is not between the rebase base and the branch tip")
	}
	return plan, nil
}
