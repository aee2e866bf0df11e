// Package runtime provides the execution context for pushit commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the git runner, logger, prompter, and repository root path.
package runtime
