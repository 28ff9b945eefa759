package gitcli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sourcepin/sourcepin/netutil"
	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// cloneDepth is the history truncation applied to every clone. Only the data
// needed to materialize the requested ref's working tree is fetched.
const cloneDepth = "1"

// Fetcher performs shallow, single-ref clones.
type Fetcher struct {
	runner ports.Runner
	git    string
}

// NewFetcher creates a fetcher that shells out through runner.
func NewFetcher(runner ports.Runner) *Fetcher {
	return &Fetcher{runner: runner, git: "git"}
}

// CloneRepo clones the given tag or branch ref into dest at depth 1.
// A pre-existing non-empty destination fails before the tool is invoked and
// leaves the destination untouched.
func (f *Fetcher) CloneRepo(ctx context.Context, tag, remote, dest string) error {
	return f.clone(ctx, remote, dest, tag, "clone", "--depth", cloneDepth, "--branch", tag, remote, dest)
}

// CloneFiles clones the remote's default branch into dest at depth 1.
func (f *Fetcher) CloneFiles(ctx context.Context, remote, dest string) error {
	return f.clone(ctx, remote, dest, "", "clone", "--depth", cloneDepth, remote, dest)
}

// HeadCommit reads the resolved commit hash of the checked-out ref at repoPath.
func (f *Fetcher) HeadCommit(ctx context.Context, repoPath string) (string, error) {
	res, err := f.runner.Run(ctx, repoPath, ports.IOSilent, f.git, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("read head commit: %w", err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s is not a repository checkout: %s", repoPath, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (f *Fetcher) clone(ctx context.Context, remote, dest, ref string, args ...string) error {
	safe := netutil.StripCredentials(remote)
	if err := ensureCloneTarget(dest); err != nil {
		return &entities.CloneError{Remote: safe, Ref: ref, Reason: err.Error()}
	}

	res, err := f.runner.Run(ctx, "", ports.IOSilent, f.git, args...)
	if err != nil {
		return &entities.CloneError{Remote: safe, Ref: ref, Reason: scrubRemote(err.Error(), remote, safe), ExitCode: -1}
	}
	if res.ExitCode != 0 {
		return &entities.CloneError{Remote: safe, Ref: ref, ExitCode: res.ExitCode, Stderr: scrubRemote(res.Stderr, remote, safe)}
	}

	return nil
}

// ensureCloneTarget rejects a destination that already exists with content.
// The check runs before the clone so a failure never mutates existing files.
func ensureCloneTarget(dest string) error {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s exists and is not a directory", dest)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("destination %s already exists and is not empty", dest)
	}

	return nil
}
