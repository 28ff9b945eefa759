package ports

import "context"

// IOMode selects how a supervised subprocess's output streams are handled.
type IOMode int

const (
	// IOSilent captures both streams without echoing them to the console.
	IOSilent IOMode = iota

	// IOStreamed echoes both streams to the console while still capturing
	// them for diagnostics. Used to surface verbose verification transcripts.
	IOStreamed
)

// RunResult holds the outcome of a finished subprocess.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner supervises external command-line tools.
// Implementations must route spawn failures to the returned error, never leak
// the child process handle, and terminate the child when ctx is cancelled.
type Runner interface {
	// Run executes name with args in dir and waits for completion.
	// A non-zero exit is not an error at this layer; it is reported through
	// RunResult.ExitCode so callers can apply their own exit-code policy.
	// The error return is reserved for spawn failures and cancellation.
	Run(ctx context.Context, dir string, mode IOMode, name string, args ...string) (RunResult, error)
}
