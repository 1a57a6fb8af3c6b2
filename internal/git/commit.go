package git

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
)

// CommitRecord is an immutable snapshot of a commit read at the start of an
// operation. Rewritten commits get new SHAs, so a record is only valid as a
// description of pre-operation state.
type CommitRecord struct {
	SHA         string
	ShortSHA    string
	Author      string
	Date        time.Time
	Subject     string
	Body        string
	ParentCount int
}

// IsMerge returns true if the commit has more than one parent
func (c CommitRecord) IsMerge() bool {
	return c.ParentCount > 1
}

// Message returns the full commit message (subject plus body)
func (c CommitRecord) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}

func newCommitRecord(commit *object.Commit) CommitRecord {
	message := strings.TrimRight(commit.Message, "\n")
	subject := message
	body := ""
	if idx := strings.Index(message, "\n"); idx >= 0 {
		subject = strings.TrimSpace(message[:idx])
		body = strings.TrimSpace(message[idx:])
	}

	sha := commit.Hash.String()
	return CommitRecord{
		SHA:         sha,
		ShortSHA:    sha[:12],
		Author:      commit.Author.Name,
		Date:        commit.Author.When,
		Subject:     subject,
		Body:        body,
		ParentCount: commit.NumParents(),
	}
}

// GetCommitRecord resolves a ref to a commit and returns its record
func GetCommitRecord(ref string) (CommitRecord, error) {
	repo, err := openRepo()
	if err != nil {
		return CommitRecord{}, err
	}

	hash, err := resolveRefHash(repo, ref)
	if err != nil {
		return CommitRecord{}, workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", ref)
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return CommitRecord{}, workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", ref)
	}

	return newCommitRecord(commit), nil
}

// GetParentSHA returns the SHA of the first parent of a commit.
// Returns ErrCommitNotFound wrapped in a ValidationError for root commits.
func GetParentSHA(ref string) (string, error) {
	repo, err := openRepo()
	if err != nil {
		return "", err
	}

	hash, err := resolveRefHash(repo, ref)
	if err != nil {
		return "", workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", ref)
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return "", workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", ref)
	}

	if commit.NumParents() == 0 {
		return "", workflowerrors.NewValidationError("commit %s has no parent (root commit)", ref)
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return "", fmt.Errorf("failed to get parent of %s: %w", ref, err)
	}
	return parent.Hash.String(), nil
}

// CommitsBetween returns the commits on the first-parent chain from base
// (exclusive) to head (inclusive), ordered oldest first. It fails when base is
// not reachable from head along first parents.
func CommitsBetween(base, head string) ([]CommitRecord, error) {
	repo, err := openRepo()
	if err != nil {
		return nil, err
	}

	headHash, err := resolveRefHash(repo, head)
	if err != nil {
		return nil, workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", head)
	}
	baseHash, err := resolveRefHash(repo, base)
	if err != nil {
		return nil, workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", base)
	}

	var records []CommitRecord
	hash := headHash
	for hash != baseHash {
		commit, err := repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
		}

		records = append(records, newCommitRecord(commit))

		if commit.NumParents() == 0 {
			return nil, workflowerrors.NewValidationError("%s is not an ancestor of %s", base, head)
		}
		hash = commit.ParentHashes[0]
	}

	// Reverse: the walk collects newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// IsAncestor checks if the first ref is an ancestor of the second ref
func IsAncestor(ancestor, descendant string) (bool, error) {
	repo, err := openRepo()
	if err != nil {
		return false, err
	}

	ancestorHash, err := resolveRefHash(repo, ancestor)
	if err != nil {
		return false, fmt.Errorf("failed to resolve ancestor ref: %w", err)
	}
	descendantHash, err := resolveRefHash(repo, descendant)
	if err != nil {
		return false, fmt.Errorf("failed to resolve descendant ref: %w", err)
	}

	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := repo.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}
	descendantCommit, err := repo.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}

// GetMergeBase returns the merge base between two refs
func GetMergeBase(ref1, ref2 string) (string, error) {
	repo, err := openRepo()
	if err != nil {
		return "", err
	}

	hash1, err := resolveRefHash(repo, ref1)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref1, err)
	}
	hash2, err := resolveRefHash(repo, ref2)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref2, err)
	}

	commit1, err := repo.CommitObject(hash1)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", ref1, err)
	}
	commit2, err := repo.CommitObject(hash2)
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", ref2, err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(mergeBases) == 0 {
		return "", fmt.Errorf("no merge base between %s and %s", ref1, ref2)
	}

	return mergeBases[0].Hash.String(), nil
}

// ResolveSHA resolves a ref to its full SHA
func ResolveSHA(ref string) (string, error) {
	repo, err := openRepo()
	if err != nil {
		return "", err
	}

	hash, err := resolveRefHash(repo, ref)
	if err != nil {
		return "", err
	}
	if hash == plumbing.ZeroHash {
		return "", workflowerrors.WrapValidationError(workflowerrors.ErrCommitNotFound, "commit %s does not resolve", ref)
	}
	return hash.String(), nil
}
