package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pushit.dev/pushit/internal/git"
)

// DefaultRemote is the remote pushed to when none is configured
const DefaultRemote = "origin"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Remote          *string `json:"remote,omitempty"`
	Confirm         *bool   `json:"confirm,omitempty"`
	MessageTemplate *string `json:"messageTemplate,omitempty"`
	TimeFormat      *string `json:"timeFormat,omitempty"`
}

const configFileName = ".pushit_config"

// configPath returns the config file inside the repository's common git directory
func configPath(repoRoot string) (string, error) {
	dotGit := filepath.Join(repoRoot, ".git")
	info, err := os.Stat(dotGit)
	if err != nil || info.IsDir() {
		return filepath.Join(dotGit, configFileName), nil
	}

	// .git is a file in linked worktrees and submodules
	gitDir, err := git.FindGitCommonDir(repoRoot)
	if err != nil {
		return "", fmt.Errorf("failed to locate git directory: %w", err)
	}
	return filepath.Join(gitDir, configFileName), nil
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	path, err := configPath(repoRoot)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config doesn't exist - return default
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func updateRepoConfig(repoRoot string, update func(*RepoConfig)) error {
	path, err := configPath(repoRoot)
	if err != nil {
		return err
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	update(config)

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, configJSON, 0600)
}

// GetRemote returns the configured remote, or "origin" as default
func GetRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}

	return DefaultRemote, nil
}

// SetRemote updates the remote in the config
func SetRemote(repoRoot string, remote string) error {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return fmt.Errorf("remote name cannot be empty")
	}
	return updateRepoConfig(repoRoot, func(c *RepoConfig) {
		c.Remote = &remote
	})
}

// GetConfirm returns whether pushit asks for confirmation before staging, false by default
func GetConfirm(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.Confirm != nil {
		return *config.Confirm, nil
	}

	return false, nil
}

// SetConfirm updates the confirm setting
func SetConfirm(repoRoot string, enabled bool) error {
	return updateRepoConfig(repoRoot, func(c *RepoConfig) {
		c.Confirm = &enabled
	})
}

// GetMessageTemplate returns the default-message template from config, or the default if not set
func GetMessageTemplate(repoRoot string) (MessageTemplate, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.MessageTemplate != nil {
		return MessageTemplate(*config.MessageTemplate).WithDefault(), nil
	}

	return DefaultMessageTemplate, nil
}

// SetMessageTemplate updates the default-message template in the config
func SetMessageTemplate(repoRoot string, template string) error {
	validated, err := NewMessageTemplate(template)
	if err != nil {
		return err
	}

	value := validated.String()
	return updateRepoConfig(repoRoot, func(c *RepoConfig) {
		c.MessageTemplate = &value
	})
}

// GetTimeFormat returns the Go time layout used for {date}, or the default if not set
func GetTimeFormat(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.TimeFormat != nil && *config.TimeFormat != "" {
		return *config.TimeFormat, nil
	}

	return DefaultTimeFormat, nil
}

// SetTimeFormat updates the time layout in the config
func SetTimeFormat(repoRoot string, layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("time format cannot be empty")
	}
	return updateRepoConfig(repoRoot, func(c *RepoConfig) {
		c.TimeFormat = &layout
	})
}
