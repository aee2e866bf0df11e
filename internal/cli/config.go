package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Keys:
  remote            remote to push to (default: origin)
  confirm           ask before staging and pushing (default: false)
  message-template  default commit message, {date} is replaced (default: "Update: {date}")
  time-format       Go time layout used for {date} (default: "2006/1/2 15:04:05")

Examples:
  pushit config get remote
  pushit config set remote upstream
  pushit config set confirm true
  pushit config set message-template "wip: {date}"`,
	}

	cmd.AddCommand(newConfigGetCmd(flags))
	cmd.AddCommand(newConfigSetCmd(flags))

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.NewCommandRunner(flags.cwd).RepoRoot()
			if err != nil {
				return err
			}

			var value string
			switch key := args[0]; key {
			case "remote":
				value, err = config.GetRemote(repoRoot)
			case "confirm":
				var enabled bool
				enabled, err = config.GetConfirm(repoRoot)
				value = strconv.FormatBool(enabled)
			case "message-template":
				var template config.MessageTemplate
				template, err = config.GetMessageTemplate(repoRoot)
				value = template.String()
			case "time-format":
				value, err = config.GetTimeFormat(repoRoot)
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", args[0], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.NewCommandRunner(flags.cwd).RepoRoot()
			if err != nil {
				return err
			}

			key := args[0]
			value := args[1]

			splog, _ := tui.NewSplogWithConfig(cmd.OutOrStdout(), cmd.ErrOrStderr(), "")

			switch key {
			case "remote":
				err = config.SetRemote(repoRoot, value)
			case "confirm":
				enabled, parseErr := strconv.ParseBool(value)
				if parseErr != nil {
					return fmt.Errorf("invalid value for confirm: %s (must be 'true' or 'false')", value)
				}
				err = config.SetConfirm(repoRoot, enabled)
			case "message-template":
				err = config.SetMessageTemplate(repoRoot, value)
			case "time-format":
				err = config.SetTimeFormat(repoRoot, value)
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}
			if err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}

			splog.Info("Set %s to: %s", key, value)
			return nil
		},
	}

	return cmd
}
