package rebase

import (
	"fmt"
	"os"
	"path/filepath"

	workflowerrors "github.com/zevwings/workflow/internal/errors"
)

// EditorScriptGenerator writes an executable script that replaces the file
// passed as its first argument with a pre-rendered source file. One
// implementation exists per platform's executable-script convention.
type EditorScriptGenerator interface {
	// Generate writes the script at path. The script must exit 0 after
	// overwriting its "$1" argument with the contents of sourceFile.
	Generate(path, sourceFile string) error
	// Extension returns the file extension scripts need on this platform
	Extension() string
}

// EditorConfig holds the generated editor scripts for one rebase run. It is
// owned by a single invocation and deleted before the operation returns.
type EditorConfig struct {
	Dir            string
	SequenceScript string
	MessageScript  string
}

// Env returns the environment variables that wire the scripts into a child
// rebase process. They are never set on the parent process.
func (c *EditorConfig) Env() []string {
	return []string{
		"GIT_SEQUENCE_EDITOR=" + c.SequenceScript,
		"GIT_EDITOR=" + c.MessageScript,
	}
}

// Cleanup removes the script directory. Safe to call more than once.
func (c *EditorConfig) Cleanup() error {
	if c.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(c.Dir); err != nil {
		return workflowerrors.NewCleanupError("remove script directory", err)
	}
	c.Dir = ""
	return nil
}

// ScriptFactory generates the sequence and message editor scripts for a
// rebase run. It only writes to a fresh temporary directory, never to the
// working tree or the commit graph.
type ScriptFactory struct {
	generator EditorScriptGenerator
}

// NewScriptFactory creates a factory using the platform's script convention
func NewScriptFactory() *ScriptFactory {
	return &ScriptFactory{generator: newPlatformScriptGenerator()}
}

// NewScriptFactoryWithGenerator creates a factory with a custom generator
func NewScriptFactoryWithGenerator(gen EditorScriptGenerator) *ScriptFactory {
	return &ScriptFactory{generator: gen}
}

// Build writes the rendered todo and the replacement commit message into a
// uniquely named temporary directory, together with the two scripts that
// copy them over git's editor files.
func (f *ScriptFactory) Build(plan *Plan, message string) (*EditorConfig, error) {
	dir, err := os.MkdirTemp("", "workflow-rebase-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create script directory: %w", err)
	}

	config, err := f.buildInDir(dir, plan, message)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}
	return config, nil
}

func (f *ScriptFactory) buildInDir(dir string, plan *Plan, message string) (*EditorConfig, error) {
	todoFile := filepath.Join(dir, "rebase-todo")
	if err := os.WriteFile(todoFile, []byte(plan.Render()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write rebase todo: %w", err)
	}

	messageFile := filepath.Join(dir, "commit-message")
	if err := os.WriteFile(messageFile, []byte(message), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write commit message: %w", err)
	}

	ext := f.generator.Extension()
	sequenceScript := filepath.Join(dir, "sequence-editor"+ext)
	if err := f.generator.Generate(sequenceScript, todoFile); err != nil {
		return nil, fmt.Errorf("failed to write sequence editor script: %w", err)
	}

	messageScript := filepath.Join(dir, "message-editor"+ext)
	if err := f.generator.Generate(messageScript, messageFile); err != nil {
		return nil, fmt.Errorf("failed to write message editor script: %w", err)
	}

	return &EditorConfig{
		Dir:            dir,
		SequenceScript: sequenceScript,
		MessageScript:  messageScript,
	}, nil
}
