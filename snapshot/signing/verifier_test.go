package signing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/ports"
	"github.com/sourcepin/sourcepin/snapshot/signing"
)

type stubRunner struct {
	res  ports.RunResult
	err  error
	call []string
	dir  string
	mode ports.IOMode
}

func (s *stubRunner) Run(ctx context.Context, dir string, mode ports.IOMode, name string, args ...string) (ports.RunResult, error) {
	s.call = append([]string{name}, args...)
	s.dir = dir
	s.mode = mode
	return s.res, s.err
}

func TestVerifier_TagMode(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}

	err := signing.NewVerifier(runner).VerifyRepo(context.Background(), "v1.0.0", "abc", "/repo", ports.IOSilent)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "verify-tag", "v1.0.0"}, runner.call)
	assert.Equal(t, "/repo", runner.dir)
	assert.Equal(t, ports.IOSilent, runner.mode)
}

func TestVerifier_CommitMode(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}

	err := signing.NewVerifier(runner).VerifyRepo(context.Background(), "", "abc123", "/repo", ports.IOStreamed)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "verify-commit", "abc123"}, runner.call)
	assert.Equal(t, ports.IOStreamed, runner.mode)
}

// Every failure path collapses into the same error regardless of cause.
func TestVerifier_FailClosed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  ports.RunResult
		err  error
	}{
		{name: "bad signature", res: ports.RunResult{ExitCode: 1, Stderr: "gpg: BAD signature"}},
		{name: "no public key", res: ports.RunResult{ExitCode: 2, Stderr: "gpg: Can't check signature"}},
		{name: "verifier crashed", res: ports.RunResult{ExitCode: -1}},
		{name: "spawn failure", err: errors.New("spawn git: executable not found")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner := &stubRunner{res: tc.res, err: tc.err}

			err := signing.NewVerifier(runner).VerifyRepo(context.Background(), "v1.0.0", "", "/repo", ports.IOSilent)
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrVerificationFailed)
			assert.EqualError(t, err, "could not verify signature")
		})
	}
}
