package git

import (
	"context"
	"fmt"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// CurrentBranch returns the current branch name as reported by
// `git rev-parse --abbrev-ref HEAD`. A detached HEAD is an error.
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if branch == "" || branch == "HEAD" {
		return "", pushiterrors.ErrNotOnBranch
	}
	return branch, nil
}
