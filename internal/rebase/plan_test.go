package rebase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
	"github.com/zevwings/workflow/internal/git"
)

func fakeCommits(subjects ...string) []git.CommitRecord {
	commits := make([]git.CommitRecord, 0, len(subjects))
	for i, subject := range subjects {
		sha := strings.Repeat("0", 39) + string(rune('a'+i))
		commits = append(commits, git.CommitRecord{
			SHA:      sha,
			ShortSHA: sha[:12],
			Subject:  subject,
		})
	}
	return commits
}

func TestBuildSquashPlanVerbs(t *testing.T) {
	commits := fakeCommits("first", "second", "third", "fourth")
	selected := map[string]bool{
		commits[0].SHA: true,
		commits[1].SHA: true,
		commits[2].SHA: true,
	}

	plan, err := BuildSquashPlan(commits, selected)
	require.NoError(t, err)
	require.Len(t, plan.Lines, 4)

	require.Equal(t, VerbPick, plan.Lines[0].Verb)
	require.Equal(t, VerbSquash, plan.Lines[1].Verb)
	require.Equal(t, VerbSquash, plan.Lines[2].Verb)
	// Commits above the squashed range are replayed unchanged
	require.Equal(t, VerbPick, plan.Lines[3].Verb)
}

func TestBuildSquashPlanRequiresRangeAtBase(t *testing.T) {
	commits := fakeCommits("first", "second", "third")
	selected := map[string]bool{
		commits[1].SHA: true,
		commits[2].SHA: true,
	}

	_, err := BuildSquashPlan(commits, selected)
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
}

func TestBuildSquashPlanEmpty(t *testing.T) {
	_, err := BuildSquashPlan(nil, map[string]bool{})
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
}

func TestBuildRewordPlanMarksOnlyTarget(t *testing.T) {
	commits := fakeCommits("first", "second", "third")

	plan, err := BuildRewordPlan(commits, commits[1].SHA)
	require.NoError(t, err)
	require.Len(t, plan.Lines, 3)

	require.Equal(t, VerbPick, plan.Lines[0].Verb)
	require.Equal(t, VerbReword, plan.Lines[1].Verb)
	require.Equal(t, VerbPick, plan.Lines[2].Verb)
}

func TestBuildRewordPlanTargetOutsideChain(t *testing.T) {
	commits := fakeCommits("first", "second")

	_, err := BuildRewordPlan(commits, strings.Repeat("f", 40))
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
}

func TestPlanRenderFormat(t *testing.T) {
	commits := fakeCommits("add parser", "fix lexer")
	plan, err := BuildRewordPlan(commits, commits[0].SHA)
	require.NoError(t, err)

	rendered := plan.Render()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "reword "+commits[0].ShortSHA+" add parser", lines[0])
	require.Equal(t, "pick "+commits[1].ShortSHA+" fix lexer", lines[1])
	require.True(t, strings.HasSuffix(rendered, "\n"))
}
