package actions

import (
	"errors"
	"strings"

	"pushit.dev/pushit/internal/config"
	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

const messagePrompt = "Commit message (leave empty for the default):"

// DefaultMessage renders the default commit message for the current time
func DefaultMessage(ctx *runtime.Context, opts PushOptions) string {
	return opts.MessageTemplate.Render(ctx.Now(), opts.TimeFormat)
}

// ResolveMessage returns the commit message for this run.
//
// Message arguments are joined with single spaces. Without arguments the user
// is prompted for one line; an answer that is empty after trimming, or a
// disabled prompt, yields the default message.
func ResolveMessage(ctx *runtime.Context, opts PushOptions) (string, error) {
	if len(opts.MessageArgs) > 0 {
		message := strings.Join(opts.MessageArgs, " ")
		if strings.TrimSpace(message) != "" {
			return message, nil
		}
		ctx.Splog.Debug("message arguments are blank, using the default message")
		return DefaultMessage(ctx, opts), nil
	}

	if opts.NoInteractive || ctx.Prompter == nil {
		return DefaultMessage(ctx, opts), nil
	}

	defaultMessage := DefaultMessage(ctx, opts)
	answer, err := ctx.Prompter.AskLine(messagePrompt, defaultMessage)
	if err != nil {
		switch {
		case errors.Is(err, tui.ErrInteractiveDisabled):
			return defaultMessage, nil
		case errors.Is(err, tui.ErrCanceled):
			return "", pushiterrors.ErrAborted
		default:
			return "", err
		}
	}

	if message := strings.TrimSpace(answer); message != "" {
		return message, nil
	}
	return defaultMessage, nil
}

// withDefaults fills in zero-valued options
func (o PushOptions) withDefaults() PushOptions {
	if o.Remote == "" {
		o.Remote = config.DefaultRemote
	}
	o.MessageTemplate = o.MessageTemplate.WithDefault()
	if o.TimeFormat == "" {
		o.TimeFormat = config.DefaultTimeFormat
	}
	return o
}
