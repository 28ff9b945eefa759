package gitcli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// TreeReader implements ports.TreeLister over the external tool.
type TreeReader struct {
	runner ports.Runner
	git    string
}

// NewTreeReader creates a tree reader that shells out through runner.
func NewTreeReader(runner ports.Runner) *TreeReader {
	return &TreeReader{runner: runner, git: "git"}
}

// ListTree enumerates all tracked files of the checked-out revision,
// recursively, relative to the repository root. The result is sorted
// lexicographically here rather than trusting the tool's output order:
// downstream digests are only reproducible if enumeration order is identical
// across machines and time.
func (t *TreeReader) ListTree(ctx context.Context, repoPath string) ([]string, error) {
	res, err := t.runner.Run(ctx, repoPath, ports.IOSilent, t.git, "ls-tree", "-r", "--name-only", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("list tree: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("list tree of %s: %s", repoPath, strings.TrimSpace(res.Stderr))
	}

	var files []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	sort.Strings(files)

	return files, nil
}
