package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	pushiterrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/tui"
)

// Execute runs pushit with the process arguments and returns the exit code:
// 0 on success or when there is nothing to commit, 1 on any failure.
func Execute(version, commit, date string) int {
	return execute(NewRootCmd(version, commit, date), os.Args[1:], os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			reportPanic(stderr, r)
			code = 1
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Step failures were already reported next to their ✗ marker
		if !errors.Is(err, pushiterrors.ErrStepFailed) {
			fmt.Fprintln(stderr, tui.ColorRed("Error: "+err.Error()))
		}
		return 1
	}
	return 0
}

// reportPanic prints the panic and records it in the log file
func reportPanic(stderr io.Writer, r any) {
	splog, err := tui.NewSplogWithConfig(io.Discard, stderr, tui.GetLogFilePath())
	if err != nil {
		splog, _ = tui.NewSplogWithConfig(io.Discard, stderr, "")
	}
	defer splog.Close()

	splog.Error("%s", tui.ColorRed(fmt.Sprintf("unexpected error: %v", r)))
}
