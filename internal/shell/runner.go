package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external tools and reports their exit status. The
// formatting pipeline only talks to the host through this interface, so
// tests can substitute a fake runner instead of touching real devices.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) error
}

// ToolMissingError indicates a required external utility is not installed.
type ToolMissingError struct {
	Tool string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("required tool %q not found in PATH", e.Tool)
}

// CommandError indicates an external utility exited non-zero. Output
// carries the utility's own diagnostic.
type CommandError struct {
	Name   string
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s %s: %v: %s", e.Name, strings.Join(e.Args, " "), e.Err, e.Output)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands on the host.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner { return &ExecRunner{} }

func (r *ExecRunner) LookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &ToolMissingError{Tool: name}
	}
	return nil
}

// Run invokes the named tool and waits for it to finish, returning its
// trimmed combined output. No timeout is applied; a hung utility blocks
// the caller.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", &ToolMissingError{Tool: name}
		}
		return "", &CommandError{Name: name, Args: args, Output: s, Err: err}
	}
	return s, nil
}
