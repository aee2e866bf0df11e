package git

import (
	"context"
	"fmt"
	"strings"
)

// Status returns the raw porcelain status of the working tree
func (r *CommandRunner) Status(ctx context.Context) (string, error) {
	output, err := r.RunRaw(ctx, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return output, nil
}

// IsClean reports whether porcelain status output describes a clean working tree
func IsClean(status string) bool {
	return strings.TrimSpace(status) == ""
}

// CountChangedPaths returns the number of entries in porcelain status output
func CountChangedPaths(status string) int {
	count := 0
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
