package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
	"pushit.dev/pushit/testhelpers/scenario"
)

func newScenario(t *testing.T) *scenario.Scenario {
	t.Helper()
	return scenario.NewScenario(t, testhelpers.BasicSceneSetup).
		WithBinaryPath(testhelpers.BinaryPath(t))
}

func TestPushCommand(t *testing.T) {
	t.Run("commits with the argument words and pushes the branch", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("fix", "bug").
			ExpectExitCode(0).
			ExpectOutputContains("✓ Pushed main to origin").
			ExpectLastCommitMessage("fix bug").
			ExpectPushed("main").
			ExpectCleanTree()
	})

	t.Run("clean working tree is a successful no-op", func(t *testing.T) {
		s := newScenario(t).
			RunCli("nothing", "here").
			ExpectExitCode(0).
			ExpectOutputContains("Nothing to commit, working tree clean").
			ExpectLastCommitMessage("1").
			ExpectNotPushed("main")
		require.NotContains(t, s.Output, "Staging changes")
	})

	t.Run("uses the default message without arguments", func(t *testing.T) {
		s := newScenario(t).
			WithUncommittedChange("feature").
			RunCli().
			ExpectExitCode(0).
			ExpectPushed("main")

		message, err := s.Scene.Repo.LastCommitMessage()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(message, "Update: "), "unexpected message %q", message)
	})

	t.Run("words after -- form the message even when they name a subcommand", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("--", "config", "tweaks").
			ExpectExitCode(0).
			ExpectLastCommitMessage("config tweaks").
			ExpectPushed("main")
	})

	t.Run("flags after the first message word are part of the message", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("bump", "-r", "origin").
			ExpectExitCode(0).
			ExpectLastCommitMessage("bump -r origin")
	})

	t.Run("pushes a feature branch under its own name", func(t *testing.T) {
		newScenario(t).
			CreateBranch("feature/login").
			WithUncommittedChange("login").
			RunCli("add", "login").
			ExpectExitCode(0).
			ExpectOutputContains("Pushing to origin/feature/login").
			ExpectPushed("feature/login").
			ExpectNotPushed("main")
	})

	t.Run("push failure exits 1 after committing", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("-r", "nowhere", "fix").
			ExpectExitCode(1).
			ExpectOutputContains("✗ Pushing to nowhere/main failed").
			ExpectLastCommitMessage("fix").
			ExpectNotPushed("main")
	})

	t.Run("detached HEAD commits but never pushes", func(t *testing.T) {
		s := newScenario(t)
		head, err := s.Scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)
		require.NoError(t, s.Scene.Repo.CheckoutDetached(head))

		s.WithUncommittedChange("feature").
			RunCli("detached", "work").
			ExpectExitCode(1).
			ExpectOutputContains("✗ Resolving current branch failed").
			ExpectLastCommitMessage("detached work").
			ExpectNotPushed("main")
		require.NotContains(t, s.Output, "Pushing to")
	})

	t.Run("fails outside a git repository", func(t *testing.T) {
		outside := t.TempDir()
		newScenario(t).
			RunCli("--cwd", outside, "msg").
			ExpectExitCode(1).
			ExpectOutputContains("not a git repository")
	})

	t.Run("confirmation is skipped when prompts are disabled", func(t *testing.T) {
		newScenario(t).
			RunCli("config", "set", "confirm", "true").
			ExpectExitCode(0).
			WithUncommittedChange("feature").
			RunCli("confirmed").
			ExpectExitCode(0).
			ExpectPushed("main")
	})
}

func TestLinkedWorktree(t *testing.T) {
	s := newScenario(t)
	worktree := filepath.Join(t.TempDir(), "wt")
	require.NoError(t, s.Scene.Repo.AddWorktree(worktree, "wt"))
	require.NoError(t, os.WriteFile(filepath.Join(worktree, "notes.txt"), []byte("from the worktree"), 0600))

	s.RunCli("--cwd", worktree, "config", "set", "remote", "origin").
		ExpectExitCode(0)

	s.RunCli("--cwd", worktree, "from", "worktree").
		ExpectExitCode(0).
		ExpectOutputContains("Pushing to origin/wt")

	local, err := s.Scene.Repo.GetRevision("wt")
	require.NoError(t, err)
	remote, err := testhelpers.RemoteRevision(s.Scene.Remote, "wt")
	require.NoError(t, err)
	require.Equal(t, local, remote)
}

func TestBuiltinCommandNames(t *testing.T) {
	t.Run("completion is not a subcommand", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("completion", "bash").
			ExpectExitCode(0).
			ExpectLastCommitMessage("completion bash").
			ExpectPushed("main")
	})

	t.Run("help words are committed after --", func(t *testing.T) {
		newScenario(t).
			WithUncommittedChange("feature").
			RunCli("--", "help", "wanted").
			ExpectExitCode(0).
			ExpectLastCommitMessage("help wanted")
	})
}

func TestVersionFlag(t *testing.T) {
	newScenario(t).
		RunCli("--version").
		ExpectExitCode(0).
		ExpectOutputContains("pushit version dev")
}
