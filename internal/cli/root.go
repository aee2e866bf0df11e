package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/cli/helpers"
	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/runtime"
)

// rootFlags holds the flags shared by the root command and its subcommands
type rootFlags struct {
	cwd           string
	debug         bool
	remote        string
	yes           bool
	noInteractive bool
}

func (f *rootFlags) runtimeOptions(cmd *cobra.Command) runtime.Options {
	return runtime.Options{
		WorkingDir: f.cwd,
		Debug:      f.debug,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pushit [commit message words...]",
		Short: "Stage, commit, and push every change in one step",
		Long: `Stage all changes, commit them, and push the current branch to the remote.

All arguments are joined with spaces to form the commit message. Without
arguments you are prompted for one; leaving the prompt empty commits with a
timestamped default such as "Update: 2026/10/19 14:03:05".

If the working tree is clean nothing happens. The first failing step stops
the run and pushit exits with status 1.

Use -- before a message that starts with a subcommand name (config or help):
  pushit -- config tweaks
  pushit -- help wanted`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, flags.runtimeOptions(cmd), func(ctx *runtime.Context) error {
				opts, err := buildPushOptions(ctx.RepoRoot, args, flags)
				if err != nil {
					return err
				}
				_, err = actions.PushAction(ctx, opts)
				return err
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.cwd, "cwd", "", "Run as if pushit was started in this directory")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Show debug output")

	rootCmd.Flags().StringVarP(&flags.remote, "remote", "r", "", "Remote to push to (default: configured remote, then origin)")
	rootCmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Do not ask for confirmation even if the repository config enables it")
	rootCmd.Flags().BoolVar(&flags.noInteractive, "no-interactive", false, "Never prompt; use the default message when none is given")
	// Everything after the first message word belongs to the message
	rootCmd.Flags().SetInterspersed(false)

	// "completion" is an ordinary message word
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}

// buildPushOptions merges flags over the repository config
func buildPushOptions(repoRoot string, args []string, flags *rootFlags) (actions.PushOptions, error) {
	remote := flags.remote
	if remote == "" {
		configured, err := config.GetRemote(repoRoot)
		if err != nil {
			return actions.PushOptions{}, err
		}
		remote = configured
	}

	confirm, err := config.GetConfirm(repoRoot)
	if err != nil {
		return actions.PushOptions{}, err
	}

	template, err := config.GetMessageTemplate(repoRoot)
	if err != nil {
		return actions.PushOptions{}, err
	}

	timeFormat, err := config.GetTimeFormat(repoRoot)
	if err != nil {
		return actions.PushOptions{}, err
	}

	return actions.PushOptions{
		MessageArgs:     args,
		Remote:          remote,
		Confirm:         confirm && !flags.yes,
		NoInteractive:   flags.noInteractive,
		MessageTemplate: template,
		TimeFormat:      timeFormat,
	}, nil
}
