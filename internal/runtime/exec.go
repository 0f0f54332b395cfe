package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the process
// has been killed.
const waitDelay = 2 * time.Second

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output; they default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Stdin is passed to the child so interactive prompts keep working.
	Stdin io.Reader
	// Timeout bounds each command. Zero means no limit.
	Timeout time.Duration
}

// NewExecRunner returns a runner wired to the process's standard streams.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Timeout: timeout,
	}
}

// Run executes c, streaming its output while capturing it.
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s is required but was not found on PATH: %w", c.Name, err)
	}

	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	if c.Quiet {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stdout = io.MultiWriter(r.stdout(), &stdoutBuf)
		cmd.Stderr = io.MultiWriter(r.stderr(), &stderrBuf)
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err == nil {
		return output, nil
	}

	// A deadline hit by our own timeout is reported as such; a cancelled
	// parent context is passed through unchanged.
	if ctx.Err() != nil {
		return output, fmt.Errorf("running %s: %w", c, ctx.Err())
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return output, &TimeoutError{Command: c.String(), Timeout: r.Timeout}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		output.ExitCode = exitErr.ExitCode()
		return output, &ProcessError{Command: c.String(), ExitCode: output.ExitCode, Output: output}
	}
	return output, fmt.Errorf("running %s: %w", c, err)
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
