package pkgmgr

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the FreeBSD package manager
const DefaultBinary = "pkg"

// exitCommandNotFound mirrors the shell's status for a missing binary
const exitCommandNotFound = 127

var ErrCommand = errors.New("package manager command failed")

// CommandError reports a package manager invocation that exited non-zero
type CommandError struct {
	Command  string
	Output   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("ERROR running command %q (exit status %d)", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return ErrCommand
}

// Runner executes pkg, optionally scoped to a jail
type Runner struct {
	binary string
	jail   string
	// run is swapped out in tests
	run    func(name string, args ...string) ([]byte, error)
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithBinary overrides the package manager binary
func WithBinary(binary string) RunnerOption {
	return func(r *Runner) {
		r.binary = binary
	}
}

// WithJail scopes every command to the named jail. An empty name means the host.
func WithJail(jail string) RunnerOption {
	return func(r *Runner) {
		r.jail = jail
	}
}

// NewRunner creates a Runner for the host package database
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		binary: DefaultBinary,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Jail returns the jail the runner is scoped to
func (r *Runner) Jail() string {
	return r.jail
}

// Args builds the full argument list for a pkg subcommand
func (r *Runner) Args(sub ...string) []string {
	args := make([]string, 0, len(sub)+2)
	if r.jail != "" {
		args = append(args, "--jail", r.jail)
	}
	return append(args, sub...)
}

// runCommand executes the package manager and returns its combined output
func (r *Runner) runCommand(sub ...string) (string, error) {
	args := r.Args(sub...)
	out, err := r.run(r.binary, args...)
	output := strings.TrimSuffix(string(out), "\n")

	if err != nil {
		cmdErr := &CommandError{
			Command: strings.Join(append([]string{r.binary}, args...), " "),
			Output:  output,
		}
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			cmdErr.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			cmdErr.ExitCode = exitCommandNotFound
			if cmdErr.Output == "" {
				cmdErr.Output = err.Error()
			}
		default:
			cmdErr.ExitCode = 1
			if cmdErr.Output == "" {
				cmdErr.Output = err.Error()
			}
		}
		// a signal-killed process reports -1
		if cmdErr.ExitCode <= 0 {
			cmdErr.ExitCode = 1
		}
		return output, cmdErr
	}

	return output, nil
}

// Version runs `pkg version --remote --exact <pkg>`
func (r *Runner) Version(pkg string) (string, error) {
	return r.runCommand("version", "--remote", "--exact", pkg)
}

// Search runs `pkg search --quiet <pkg>`
func (r *Runner) Search(pkg string) (string, error) {
	return r.runCommand("search", "--quiet", pkg)
}

var _ Executor = (*Runner)(nil)
