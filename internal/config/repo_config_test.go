package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
)

func newRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0750))
	return root
}

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		remote, err := GetRemote(root)
		require.NoError(t, err)
		require.Equal(t, "origin", remote)

		confirm, err := GetConfirm(root)
		require.NoError(t, err)
		require.False(t, confirm)

		template, err := GetMessageTemplate(root)
		require.NoError(t, err)
		require.Equal(t, DefaultMessageTemplate, template)

		layout, err := GetTimeFormat(root)
		require.NoError(t, err)
		require.Equal(t, DefaultTimeFormat, layout)
	})

	t.Run("returns an error for a malformed config", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)
		require.NoError(t, os.WriteFile(configPath(root), []byte("{not json"), 0600))

		_, err := GetRepoConfig(root)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse repo config")
	})
}

func TestSetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("round trips every key", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.NoError(t, SetRemote(root, " upstream "))
		require.NoError(t, SetConfirm(root, true))
		require.NoError(t, SetMessageTemplate(root, "wip {date}"))
		require.NoError(t, SetTimeFormat(root, time.RFC3339))

		remote, err := GetRemote(root)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)

		confirm, err := GetConfirm(root)
		require.NoError(t, err)
		require.True(t, confirm)

		template, err := GetMessageTemplate(root)
		require.NoError(t, err)
		require.Equal(t, MessageTemplate("wip {date}"), template)

		layout, err := GetTimeFormat(root)
		require.NoError(t, err)
		require.Equal(t, time.RFC3339, layout)
	})

	t.Run("rejects blank values", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.Error(t, SetRemote(root, "  "))
		require.Error(t, SetMessageTemplate(root, "   "))
		require.Error(t, SetTimeFormat(root, ""))

		_, err := os.Stat(configPath(root))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("writes the file with owner-only permissions", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)
		require.NoError(t, SetConfirm(root, false))

		path, err := configPath(root)
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}

func TestRepoConfigLinkedCheckouts(t *testing.T) {
	t.Parallel()

	newRepo := func(t *testing.T) *testhelpers.GitRepo {
		t.Helper()
		repo, err := testhelpers.NewGitRepo(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, repo.CreateChangeAndCommit("1", "1"))
		return repo
	}

	t.Run("linked worktree shares the main repository config", func(t *testing.T) {
		t.Parallel()
		repo := newRepo(t)
		worktree := filepath.Join(t.TempDir(), "wt")
		require.NoError(t, repo.AddWorktree(worktree, "wt"))

		remote, err := GetRemote(worktree)
		require.NoError(t, err)
		require.Equal(t, DefaultRemote, remote)

		require.NoError(t, SetRemote(worktree, "upstream"))

		remote, err = GetRemote(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)

		_, err = os.Stat(filepath.Join(repo.Dir, ".git", configFileName))
		require.NoError(t, err)
	})

	t.Run("submodule keeps its own config", func(t *testing.T) {
		t.Parallel()
		parent := newRepo(t)
		child := newRepo(t)
		require.NoError(t, parent.AddSubmodule(child.Dir, "sub"))
		sub := filepath.Join(parent.Dir, "sub")

		require.NoError(t, SetConfirm(sub, true))

		confirm, err := GetConfirm(sub)
		require.NoError(t, err)
		require.True(t, confirm)

		confirm, err = GetConfirm(parent.Dir)
		require.NoError(t, err)
		require.False(t, confirm)

		_, err = os.Stat(filepath.Join(parent.Dir, ".git", "modules", "sub", configFileName))
		require.NoError(t, err)
	})
}

func TestMessageTemplate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, time.March, 5, 9, 4, 7, 0, time.Local)

	t.Run("default renders like the zh-CN locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Update: 2026/3/5 09:04:07", DefaultMessageTemplate.Render(now, ""))
	})

	t.Run("custom layout and template", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "wip 2026-03-05", MessageTemplate("wip {date}").Render(now, "2006-01-02"))
	})

	t.Run("blank template falls back to default", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, DefaultMessageTemplate, MessageTemplate(" ").WithDefault())

		template, err := NewMessageTemplate("")
		require.NoError(t, err)
		require.Equal(t, DefaultMessageTemplate, template)
	})
}
