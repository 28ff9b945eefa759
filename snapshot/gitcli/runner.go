// Package gitcli adapts the external version-control command-line tool to the
// subsystem's ports.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sourcepin/sourcepin/netutil"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// captureLimit caps each captured subprocess stream. A hostile or chatty
// remote must not balloon memory through transcript capture.
const captureLimit = 1 << 20

// waitDelay bounds how long Wait blocks on I/O pipes after the child is
// killed, so cancellation cannot leave a zombie behind.
const waitDelay = 5 * time.Second

// ExecRunner implements ports.Runner on os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by the host's process facilities.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and waits for it to finish. Cancelling
// ctx kills the child process. A non-zero exit is reported via RunResult, not
// the error return; spawn failures and cancellation come back as errors.
func (r *ExecRunner) Run(ctx context.Context, dir string, mode ports.IOMode, name string, args ...string) (ports.RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	stdout := netutil.NewCappedBuffer(captureLimit)
	stderr := netutil.NewCappedBuffer(captureLimit)
	if mode == ports.IOStreamed {
		cmd.Stdout = io.MultiWriter(os.Stdout, stdout)
		cmd.Stderr = io.MultiWriter(os.Stderr, stderr)
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}

	err := cmd.Run()
	result := ports.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, fmt.Errorf("spawn %s: %w", name, err)
	}

	return result, nil
}
