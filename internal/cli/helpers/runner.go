// Package helpers holds glue shared by the cobra commands.
package helpers

import (
	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
// and releases it once fn returns.
func Run(cmd *cobra.Command, opts runtime.Options, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = ctx.Close()
	}()
	return fn(ctx)
}
