package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/internal/output"
)

// SquashPreview describes a squash before it runs. It is handed to the
// presentation layer for confirmation and carries no formatting state.
type SquashPreview struct {
	Commits    []git.CommitRecord
	NewMessage string
	BaseSHA    string
	IsPushed   bool
}

// NewSquashPreview builds a preview for the given commits and message.
// The pushed flag is advisory; failing to determine it is not an error.
func NewSquashPreview(ctx context.Context, commits []git.CommitRecord, newMessage, baseSHA string) *SquashPreview {
	pushed := false
	for _, commit := range commits {
		if inRemote, err := git.IsCommitInRemote(ctx, commit.SHA); err == nil && inRemote {
			pushed = true
			break
		}
	}

	return &SquashPreview{
		Commits:    commits,
		NewMessage: newMessage,
		BaseSHA:    baseSHA,
		IsPushed:   pushed,
	}
}

// Format renders the preview for the console
func (p *SquashPreview) Format() string {
	var b strings.Builder

	b.WriteString(output.Header("Squash preview") + "\n\n")
	fmt.Fprintf(&b, "  Commits to squash: %d\n", len(p.Commits))
	fmt.Fprintf(&b, "  New message:       %s\n\n", firstLine(p.NewMessage))

	for i, commit := range p.Commits {
		fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, output.ColorSHA(commit.ShortSHA), commit.Subject)
	}

	if p.IsPushed {
		b.WriteString("\n" + output.ColorWarning("Some of these commits were already pushed; the remote branch will need a force push afterwards.") + "\n")
	}

	return b.String()
}

// RewordPreview describes a reword before it runs
type RewordPreview struct {
	Original   git.CommitRecord
	NewMessage string
	IsPushed   bool
}

// NewRewordPreview builds a preview for rewording one commit
func NewRewordPreview(ctx context.Context, original git.CommitRecord, newMessage string) *RewordPreview {
	pushed, err := git.IsCommitInRemote(ctx, original.SHA)
	if err != nil {
		pushed = false
	}

	return &RewordPreview{
		Original:   original,
		NewMessage: newMessage,
		IsPushed:   pushed,
	}
}

// Format renders the preview for the console
func (p *RewordPreview) Format() string {
	var b strings.Builder

	b.WriteString(output.Header("Reword preview") + "\n\n")
	fmt.Fprintf(&b, "  Commit:           %s\n", output.ColorSHA(p.Original.ShortSHA))
	fmt.Fprintf(&b, "  Original message: %s\n", p.Original.Subject)
	fmt.Fprintf(&b, "  New message:      %s\n", firstLine(p.NewMessage))
	b.WriteString("\n  " + output.Dim("The commit identifier will change; descendants are replayed unchanged.") + "\n")

	if p.IsPushed {
		b.WriteString("\n" + output.ColorWarning("This commit was already pushed; the remote branch will need a force push afterwards.") + "\n")
	}

	return b.String()
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}
