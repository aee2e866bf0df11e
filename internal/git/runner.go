package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	pushiterrors "pushit.dev/pushit/internal/errors"
)

// DefaultCommandTimeout bounds the captured git queries (status, rev-parse).
// Streamed commands (add, commit, push) are not bounded.
const DefaultCommandTimeout = 5 * time.Minute

var queryTimeout = DefaultCommandTimeout

// Runner defines the git operations used by the push pipeline.
// This allows the pipeline to be used with both real git and fake implementations.
type Runner interface {
	// RepoRoot returns the top-level directory of the repository
	RepoRoot() (string, error)

	// Status returns the raw `git status --porcelain` output
	Status(ctx context.Context) (string, error)

	// StageAll stages every change in the working tree
	StageAll(ctx context.Context) error

	// HasStagedChanges reports whether the index differs from HEAD
	HasStagedChanges(ctx context.Context) (bool, error)

	// Commit records the staged changes with the given message
	Commit(ctx context.Context, message string) error

	// CurrentBranch returns the short name of the checked out branch
	CurrentBranch(ctx context.Context) (string, error)

	// Push pushes branchName to remote
	Push(ctx context.Context, remote, branchName string) error
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	stdout     io.Writer
	stderr     io.Writer
}

var _ Runner = (*CommandRunner)(nil)

// NewCommandRunner creates a new CommandRunner that mirrors streamed
// command output to the process's own stdout and stderr.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{
		workingDir: workingDir,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithOutput returns a copy of the runner that mirrors streamed output to the given writers
func (r *CommandRunner) WithOutput(stdout, stderr io.Writer) *CommandRunner {
	return &CommandRunner{
		workingDir: r.workingDir,
		stdout:     stdout,
		stderr:     stderr,
	}
}

// withDefaultTimeout adds DefaultCommandTimeout when the context has no deadline
func withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}

func (r *CommandRunner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	return cmd
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runCaptured(ctx, true, args...)
}

// RunRaw executes a git command and returns the output without trimming
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runCaptured(ctx, false, args...)
}

func (r *CommandRunner) runCaptured(ctx context.Context, trim bool, args ...string) (string, error) {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	cmd := r.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", pushiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", pushiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunStreaming executes a git command with its output mirrored to the runner's
// writers. Stderr is also kept so a failure can report what git said.
// It blocks until git exits or ctx is cancelled.
func (r *CommandRunner) RunStreaming(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := r.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stdout = r.stdout
	if r.stderr != nil {
		cmd.Stderr = io.MultiWriter(r.stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return pushiterrors.NewGitCommandError("git", args, "", stderr.String(), ctx.Err())
		}
		return pushiterrors.NewGitCommandError("git", args, "", stderr.String(), err)
	}
	return nil
}
