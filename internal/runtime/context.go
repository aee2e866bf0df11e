package runtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/tui"
)

// Prompter asks the user questions
type Prompter interface {
	AskLine(prompt, placeholder string) (string, error)
	Confirm(prompt string, defaultValue bool) (bool, error)
}

// Context provides access to git, output, and prompts for commands
type Context struct {
	context.Context
	Git      git.Runner
	Splog    *tui.Splog
	Prompter Prompter
	RepoRoot string
	Now      func() time.Time
}

// Options configures GetContext
type Options struct {
	WorkingDir string
	Debug      bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// NewContext creates a context from already-built dependencies
func NewContext(ctx context.Context, runner git.Runner, splog *tui.Splog, prompter Prompter) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context:  ctx,
		Git:      runner,
		Splog:    splog,
		Prompter: prompter,
		Now:      time.Now,
	}
}

// GetContext builds the real context: a git runner for the working directory,
// a logger that also writes to the rotated log file, and a console prompter.
// It fails when the working directory is not inside a git repository.
func GetContext(ctx context.Context, opts Options) (*Context, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	splog, err := tui.NewSplogWithConfig(opts.Stdout, opts.Stderr, tui.GetLogFilePath())
	if err != nil {
		// File logging is best effort
		splog, _ = tui.NewSplogWithConfig(opts.Stdout, opts.Stderr, "")
		splog.Debug("file logging disabled: %v", err)
	}
	if opts.Debug {
		splog.SetDebug(true)
	}

	runner := git.NewCommandRunner(opts.WorkingDir).WithOutput(opts.Stdout, opts.Stderr)
	repoRoot, err := runner.RepoRoot()
	if err != nil {
		_ = splog.Close()
		return nil, err
	}

	c := NewContext(ctx, runner, splog, tui.NewPrompter(opts.Stdin, opts.Stdout))
	c.RepoRoot = repoRoot
	return c, nil
}

// Close releases the log file
func (c *Context) Close() error {
	if c.Splog == nil {
		return nil
	}
	if err := c.Splog.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
