package runtime

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Runner executes external commands.
//
// Implementations must respect ctx cancellation and must return a
// *ProcessError when the command exits with a non-zero status.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command describes one process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Quiet suppresses streaming to the runner's writers. Output is still
	// captured.
	Quiet bool
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessError is returned when a command exits with a non-zero status.
type ProcessError struct {
	Command  string
	ExitCode int
	Output   *Output
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// TimeoutError is returned when a command outlives the runner's timeout.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Command, e.Timeout)
}

// Is lets errors.Is(err, context.DeadlineExceeded) match a timeout.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}
