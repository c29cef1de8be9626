// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"invrep/internal/appcore"
	"invrep/internal/cli"
)

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCommand(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	var ee *cli.ExitError
	switch {
	case err == nil:
		return appcore.ExitOK
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, context.Canceled):
		return appcore.ExitCanceled
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintln(stderr, "Run 'invrep --help' for usage.")
		return appcore.ExitUsage
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
