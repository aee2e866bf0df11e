package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// Push pushes a branch to the given remote
func (r *CommandRunner) Push(ctx context.Context, remote, branchName string) error {
	err := r.RunStreaming(ctx, "push", remote, branchName)
	if err == nil {
		return nil
	}

	var gitErr *pushiterrors.GitCommandError
	if errors.As(err, &gitErr) && isRejected(gitErr.Stderr) {
		return fmt.Errorf("push of %s to %s was rejected because the remote has commits you do not have locally. Run 'git pull --rebase %s %s' and try again: %w", branchName, remote, remote, branchName, err)
	}
	return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
}

func isRejected(stderr string) bool {
	return strings.Contains(stderr, "[rejected]") || strings.Contains(stderr, "non-fast-forward")
}
