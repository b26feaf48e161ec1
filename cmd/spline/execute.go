package spline

import (
	"fmt"
	"io"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/style"
)

// Execute runs spline with args and returns the process exit code. Errors
// are reported on stderr; stdout only ever receives a complete result.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		message := MsgErrorPrefix + err.Error()
		_, _ = fmt.Fprintln(stderr, style.Render(styled(stderr), "Error", message))
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}
