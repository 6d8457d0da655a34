package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/obentoo/pkg-update-checker/internal/checker"
	"github.com/obentoo/pkg-update-checker/internal/common/config"
	"github.com/obentoo/pkg-update-checker/internal/common/logger"
	"github.com/obentoo/pkg-update-checker/internal/common/output"
	"github.com/obentoo/pkg-update-checker/internal/pkgmgr"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its error to a process exit code
func execute(args []string, stdout, stderr io.Writer, checkerOpts ...checker.Option) int {
	cmd := newRootCmd(checkerOpts...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	output.Stdout = stdout
	logger.Default().SetOutput(stderr)
	defer logger.Default().Close()

	return exitCode(cmd, cmd.Execute(), stdout)
}

func exitCode(cmd *cobra.Command, err error, stdout io.Writer) int {
	var usageErr *usageError
	var cmdErr *pkgmgr.CommandError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usageErr):
		logger.Debug("%v", err)
		fmt.Fprintln(stdout, "invalid args")
		cmd.Help()
		return exitUsage
	case errors.Is(err, config.ErrInvalidArgs):
		logger.Debug("%v", err)
		fmt.Fprintln(stdout, "missing or invalid args")
		cmd.Help()
		return exitUsage
	case errors.As(err, &cmdErr):
		fmt.Fprintln(stdout, cmdErr.Output)
		fmt.Fprintf(stdout, "ERROR running command %q\n", cmdErr.Command)
		return cmdErr.ExitCode
	default:
		logger.Error("%v", err)
		return exitFatal
	}
}
