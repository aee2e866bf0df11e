// Package config manages pushit configuration.
//
// It handles:
//   - Repository-specific configuration stored in .git/.pushit_config
//   - The default commit message template and its timestamp layout
package config
