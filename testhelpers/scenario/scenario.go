// Package scenario provides a fluent wrapper around a Scene and the pushit
// binary for end-to-end CLI tests.
package scenario

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/testhelpers"
)

// Scenario combines a Scene with the path of a built pushit binary.
type Scenario struct {
	T          *testing.T
	Scene      *testhelpers.Scene
	BinaryPath string

	// Output and ExitCode describe the most recent RunCli call
	Output   string
	ExitCode int

	logFile string
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)

	return &Scenario{
		T:       t,
		Scene:   scene,
		logFile: filepath.Join(t.TempDir(), "pushit.log"),
	}
}

// WithBinaryPath sets the path to the pushit binary for RunCli methods.
func (s *Scenario) WithBinaryPath(path string) *Scenario {
	s.BinaryPath = path
	return s
}

// WithInitialCommit creates an initial commit on the main branch.
func (s *Scenario) WithInitialCommit() *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChangeAndCommit("initial", "init")
	require.NoError(s.T, err)
	return s
}

// WithUncommittedChange creates an unstaged change in a file named after name.
func (s *Scenario) WithUncommittedChange(name string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateChange("unstaged content "+name, name, true)
	require.NoError(s.T, err)
	return s
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.RunGitCommand(args...)
	require.NoError(s.T, err)
	return s
}

// CreateBranch creates and checks out a new branch.
func (s *Scenario) CreateBranch(name string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CreateAndCheckoutBranch(name)
	require.NoError(s.T, err)
	return s
}

// RunCli executes pushit in the scene directory and records its combined
// output and exit code. A failure to start the binary fails the test.
func (s *Scenario) RunCli(args ...string) *Scenario {
	s.T.Helper()
	if s.BinaryPath == "" {
		s.T.Fatal("BinaryPath not set. Call WithBinaryPath first.")
	}

	cmd := exec.Command(s.BinaryPath, args...)
	cmd.Dir = s.Scene.Dir
	cmd.Env = append(os.Environ(), "PUSHIT_NO_INTERACTIVE=1", "PUSHIT_LOG_FILE="+s.logFile)
	output, err := cmd.CombinedOutput()
	s.Output = string(output)
	s.ExitCode = 0

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		s.ExitCode = exitErr.ExitCode()
	case err != nil:
		s.T.Fatalf("failed to run pushit %v: %v", args, err)
	}
	return s
}

// ExpectExitCode asserts the exit code of the last RunCli call.
func (s *Scenario) ExpectExitCode(code int) *Scenario {
	s.T.Helper()
	require.Equal(s.T, code, s.ExitCode, "pushit exited with %d\nOutput: %s", s.ExitCode, s.Output)
	return s
}

// ExpectOutputContains asserts that the output of the last RunCli call contains text.
func (s *Scenario) ExpectOutputContains(text string) *Scenario {
	s.T.Helper()
	require.Contains(s.T, s.Output, text)
	return s
}

// ExpectLastCommitMessage asserts the subject of the HEAD commit.
func (s *Scenario) ExpectLastCommitMessage(expected string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.LastCommitMessage()
	require.NoError(s.T, err)
	require.Equal(s.T, expected, actual)
	return s
}

// ExpectPushed asserts that the remote branch matches the local branch.
func (s *Scenario) ExpectPushed(branch string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectRemoteMatchesLocal(s.T, s.Scene, branch)
	return s
}

// ExpectNotPushed asserts that branch does not exist on the remote.
func (s *Scenario) ExpectNotPushed(branch string) *Scenario {
	s.T.Helper()
	_, err := testhelpers.RemoteRevision(s.Scene.Remote, branch)
	require.Error(s.T, err, "branch %s should not be on the remote", branch)
	return s
}

// ExpectCleanTree asserts that nothing is left to commit.
func (s *Scenario) ExpectCleanTree() *Scenario {
	s.T.Helper()
	testhelpers.ExpectCleanTree(s.T, s.Scene.Repo)
	return s
}
