// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Working tree status (porcelain output)
//   - Staging and committing
//   - Current branch resolution
//   - Pushing to a remote
//
// Repository discovery uses go-git; everything that mutates the repository
// is delegated to the git binary. This package should be the only place where
// direct git commands are executed.
package git
