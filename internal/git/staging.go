package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files and deletions
func (r *CommandRunner) StageAll(ctx context.Context) error {
	if err := r.RunStreaming(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return output != "", nil
}
