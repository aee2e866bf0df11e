package actions

import (
	"errors"
	"fmt"

	"pushit.dev/pushit/internal/config"
	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// Step descriptions, printed before each step and in its success/failure marker
const (
	StepStatus  = "Checking working tree status"
	StepStage   = "Staging changes"
	StepCommit  = "Committing changes"
	StepBranch  = "Resolving current branch"
	StepPushFmt = "Pushing to %s/%s"
)

// PushOptions contains options for the push command.
// MessageArgs are the command-line words that form the commit message;
// Confirm asks before anything is staged.
type PushOptions struct {
	MessageArgs     []string
	Remote          string
	Confirm         bool
	NoInteractive   bool
	MessageTemplate config.MessageTemplate
	TimeFormat      string
}

// PushResult describes what a successful PushAction did
type PushResult struct {
	NothingToCommit bool
	Message         string
	SkippedCommit   bool
	Branch          string
	Remote          string
}

// PushAction stages every change, commits it, and pushes the current branch.
// A clean working tree is a successful no-op. Any failing step aborts the
// remaining ones and is returned as a *errors.StepError.
func PushAction(ctx *runtime.Context, opts PushOptions) (*PushResult, error) {
	opts = opts.withDefaults()
	splog := ctx.Splog

	splog.Info("%s", tui.Banner("Pushing changes to "+opts.Remote))

	status, err := ctx.Git.Status(ctx)
	if err != nil {
		splog.Error("%s", tui.FailureMarker(fmt.Sprintf("%s failed: %v", StepStatus, err)))
		return nil, pushiterrors.NewStepError(StepStatus, err)
	}
	if git.IsClean(status) {
		splog.Info("Nothing to commit, working tree clean")
		return &PushResult{NothingToCommit: true, Remote: opts.Remote}, nil
	}
	splog.Debug("%d changed path(s)", git.CountChangedPaths(status))

	if opts.Confirm && !opts.NoInteractive {
		if err := confirmPush(ctx, opts, git.CountChangedPaths(status)); err != nil {
			return nil, err
		}
	}

	message, err := ResolveMessage(ctx, opts)
	if err != nil {
		return nil, err
	}
	splog.Info("Commit message: %s", tui.ColorCyan(message))

	var staged bool
	if err := runStep(ctx, StepStage, func() error {
		if err := ctx.Git.StageAll(ctx); err != nil {
			return err
		}
		var err error
		staged, err = ctx.Git.HasStagedChanges(ctx)
		return err
	}); err != nil {
		return nil, err
	}

	// Changes git cannot stage (e.g. untracked content inside a submodule) leave the index unchanged
	if staged {
		if err := runStep(ctx, StepCommit, func() error {
			return ctx.Git.Commit(ctx, message)
		}); err != nil {
			return nil, err
		}
	} else {
		splog.Newline()
		splog.Info("Nothing was staged, skipping the commit")
	}

	var branch string
	if err := runStep(ctx, StepBranch, func() error {
		var err error
		branch, err = ctx.Git.CurrentBranch(ctx)
		return err
	}); err != nil {
		if errors.Is(err, pushiterrors.ErrNotOnBranch) {
			splog.Tip("The commit was created. Check out a branch and push it with git push.")
		}
		return nil, err
	}

	if err := runStep(ctx, fmt.Sprintf(StepPushFmt, opts.Remote, branch), func() error {
		return ctx.Git.Push(ctx, opts.Remote, branch)
	}); err != nil {
		return nil, err
	}

	splog.Info("%s", tui.Banner(tui.SuccessMarker(fmt.Sprintf("Pushed %s to %s", branch, opts.Remote))))

	return &PushResult{
		Message:       message,
		SkippedCommit: !staged,
		Branch:        branch,
		Remote:        opts.Remote,
	}, nil
}

func confirmPush(ctx *runtime.Context, opts PushOptions, changed int) error {
	if ctx.Prompter == nil {
		return nil
	}

	ok, err := ctx.Prompter.Confirm(fmt.Sprintf("Commit and push %d changed path(s) to %s?", changed, opts.Remote), false)
	switch {
	case errors.Is(err, tui.ErrInteractiveDisabled):
		// Nobody to ask; behave as if --yes was given
		ctx.Splog.Warn("Prompts are disabled, pushing without confirmation")
		return nil
	case errors.Is(err, tui.ErrCanceled):
		return pushiterrors.ErrAborted
	case err != nil:
		return err
	case !ok:
		return pushiterrors.ErrAborted
	}
	return nil
}

// runStep prints the step description, runs fn, and prints a ✓ or ✗ marker
func runStep(ctx *runtime.Context, description string, fn func() error) error {
	ctx.Splog.Newline()
	ctx.Splog.Info("%s...", description)

	if err := fn(); err != nil {
		ctx.Splog.Error("%s", tui.FailureMarker(fmt.Sprintf("%s failed: %v", description, err)))
		return pushiterrors.NewStepError(description, err)
	}

	ctx.Splog.Info("%s", tui.SuccessMarker(description+" succeeded"))
	return nil
}
