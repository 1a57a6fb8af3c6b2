// Package config provides repository configuration management for the
// workflow CLI, read from a JSON file inside the repository's .git directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".workflow_config"

// DefaultTrunk is the base branch assumed when none is configured
const DefaultTrunk = "main"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Trunk     *string `json:"trunk,omitempty"`
	AutoStash *bool   `json:"autoStash,omitempty"`
}

// GetRepoConfig reads the repository configuration. A missing file yields
// defaults, not an error.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// GetTrunk returns the configured trunk branch name, or the default
func (c *RepoConfig) GetTrunk() string {
	if c.Trunk != nil && *c.Trunk != "" {
		return *c.Trunk
	}
	return DefaultTrunk
}

// GetAutoStash returns whether dirty working trees are shelved automatically
func (c *RepoConfig) GetAutoStash() bool {
	return c.AutoStash != nil && *c.AutoStash
}

// WriteRepoConfig writes the repository configuration
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize repo config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}
