package gitcli_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/snapshot/gitcli"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_CapturesStreams(t *testing.T) {
	t.Parallel()
	requireShell(t)

	res, err := gitcli.NewExecRunner().Run(context.Background(), "", ports.IOSilent,
		"sh", "-c", "echo to-out; echo to-err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Stdout, "to-out")
	assert.Contains(t, res.Stderr, "to-err")
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()
	requireShell(t)

	res, err := gitcli.NewExecRunner().Run(context.Background(), "", ports.IOSilent,
		"sh", "-c", "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	t.Parallel()

	_, err := gitcli.NewExecRunner().Run(context.Background(), "", ports.IOSilent,
		"definitely-not-an-executable-on-this-host")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn")
}

func TestExecRunner_Cancellation(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gitcli.NewExecRunner().Run(ctx, "", ports.IOSilent, "sh", "-c", "sleep 30")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
