// Package testhelpers provides testing utilities for the pushit CLI,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectCleanTree asserts that the working tree has nothing left to commit.
func ExpectCleanTree(t *testing.T, repo *GitRepo) {
	t.Helper()

	status, err := repo.Status()
	require.NoError(t, err, "Failed to read status")
	require.Empty(t, status, "expected a clean working tree")
}

// ExpectRemoteMatchesLocal asserts that the remote branch points at the same commit as the local branch.
func ExpectRemoteMatchesLocal(t *testing.T, scene *Scene, branch string) {
	t.Helper()

	local, err := scene.Repo.GetRevision(branch)
	require.NoError(t, err)
	remote, err := RemoteRevision(scene.Remote, branch)
	require.NoError(t, err, "branch %s was not pushed", branch)
	require.Equal(t, local, remote)
}
