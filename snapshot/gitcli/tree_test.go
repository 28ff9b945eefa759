package gitcli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/snapshot/gitcli"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

func TestTreeReader_ListTree_CanonicalOrder(t *testing.T) {
	t.Parallel()

	// Deliberately unsorted tool output: the reader must not trust it.
	runner := &fakeRunner{results: map[string]fakeResult{
		"ls-tree": {res: ports.RunResult{Stdout: "src/main.go\nREADME.md\nsrc/lib/util.go\n\n"}},
	}}

	files, err := gitcli.NewTreeReader(runner).ListTree(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "src/lib/util.go", "src/main.go"}, files)
	assert.Equal(t, []string{"git", "ls-tree", "-r", "--name-only", "HEAD"}, runner.calls[0])
}

func TestTreeReader_ListTree_ToolFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{results: map[string]fakeResult{
		"ls-tree": {res: ports.RunResult{ExitCode: 128, Stderr: "fatal: not a git repository"}},
	}}

	_, err := gitcli.NewTreeReader(runner).ListTree(context.Background(), "/repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}
