// Package signing gates snapshots behind cryptographic signature checks.
//
// The cryptography itself is delegated to an external verification tool; this
// package only supervises the subprocess and maps its exit status to a binary
// trust decision.
package signing

import (
	"context"

	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// Verifier confirms that a tag or commit carries a valid signature.
type Verifier struct {
	runner ports.Runner
	tool   string
}

// NewVerifier creates a verifier that shells out through runner.
func NewVerifier(runner ports.Runner) *Verifier {
	return &Verifier{runner: runner, tool: "git"}
}

// VerifyRepo checks the signature of the checkout at repoPath. A non-empty
// tag targets the tag's signature; otherwise the commit's signature is
// checked directly. The mode selects whether the verifier's transcript is
// streamed to the console or suppressed.
//
// Exit 0 is the only success. Any non-zero exit and any spawn failure
// collapse into the same ErrVerificationFailed: callers cannot distinguish a
// bad signature from a crashed verifier without the raw transcript, which is
// the accepted cost of failing closed at a trust boundary.
func (v *Verifier) VerifyRepo(ctx context.Context, tag, commit, repoPath string, mode ports.IOMode) error {
	subcommand, target := "verify-commit", commit
	if tag != "" {
		subcommand, target = "verify-tag", tag
	}

	res, err := v.runner.Run(ctx, repoPath, mode, v.tool, subcommand, target)
	if err != nil || res.ExitCode != 0 {
		return entities.ErrVerificationFailed
	}

	return nil
}
