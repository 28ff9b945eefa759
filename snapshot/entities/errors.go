package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sourcepin/sourcepin/snapshot/values"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrMalformedRef is returned when a remote ref-list line does not match
	// the expected wire format. Fatal rather than skipped: an unparseable ref
	// could hide a tampered or unexpected reference.
	ErrMalformedRef = errors.New("malformed ref-list line")

	// ErrRemoteUnavailable is returned when the remote cannot be reached or
	// its ref namespace is empty.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrCloneFailed is returned when a shallow clone cannot be completed.
	ErrCloneFailed = errors.New("clone failed")

	// ErrVerificationFailed is the single fail-closed outcome for any
	// signature check that did not positively succeed. Bad signature,
	// missing key, and a crashed verifier are deliberately collapsed into
	// one result: the trust gate is binary, not a diagnostic surface.
	ErrVerificationFailed = errors.New("could not verify signature")

	// ErrTreeMismatch is returned when a checkout's tree hash no longer
	// matches its pin record.
	ErrTreeMismatch = errors.New("tree hash mismatch")
)

// RefParseError indicates a remote ref-list line violated the wire format.
type RefParseError struct {
	Remote string
	Line   string
}

func (e *RefParseError) Error() string {
	return fmt.Sprintf("malformed ref-list line from %s: %q", e.Remote, e.Line)
}

// Is implements error matching for errors.Is() checks.
func (e *RefParseError) Is(target error) bool {
	return target == ErrMalformedRef
}

// RemoteError indicates the remote could not be listed.
// The tool's exit status and error stream are retained; Remote and Stderr
// carry no embedded credentials, the adapters strip them at construction.
type RemoteError struct {
	Remote   string
	ExitCode int
	Stderr   string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("remote %s unavailable (exit %d)", e.Remote, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Is implements error matching for errors.Is() checks.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// CloneError indicates a shallow clone failed: destination conflict, missing
// ref, or network failure. Exit status and stderr surface for diagnosability,
// with remote credentials stripped at construction.
type CloneError struct {
	Remote   string
	Ref      string
	Reason   string
	ExitCode int
	Stderr   string
}

func (e *CloneError) Error() string {
	msg := "clone of " + e.Remote
	if e.Ref != "" {
		msg += " at " + e.Ref
	}
	msg += " failed"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += fmt.Sprintf(" (exit %d: %s)", e.ExitCode, s)
	}
	return msg
}

// Is implements error matching for errors.Is() checks.
func (e *CloneError) Is(target error) bool {
	return target == ErrCloneFailed
}

// TreeMismatchError indicates a reproducibility failure.
// Provides the expected and recomputed tree hashes.
type TreeMismatchError struct {
	Expected values.Digest
	Actual   values.Digest
}

func (e *TreeMismatchError) Error() string {
	return fmt.Sprintf(
		"tree hash mismatch: expected %s, got %s",
		e.Expected.String(),
		e.Actual.String(),
	)
}

// Is implements error matching for errors.Is() checks.
func (e *TreeMismatchError) Is(target error) bool {
	return target == ErrTreeMismatch
}
