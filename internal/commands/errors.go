package commands

import (
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/service"
)

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	if service.IsStorageError(err) {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// rejectArgs fails when a command that takes no arguments receives some.
func rejectArgs(errOut io.Writer, args []string) (int, bool) {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError, true
	}
	return exitcode.Success, false
}
