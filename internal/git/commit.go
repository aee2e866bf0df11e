package git

import (
	"context"
	"fmt"
)

// Commit creates a commit with the given message.
// The message is passed as a single argument, so it is never shell-interpreted.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	if err := r.RunStreaming(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
