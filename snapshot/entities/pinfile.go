package entities

import (
	"fmt"
	"time"

	"github.com/sourcepin/sourcepin/snapshot/values"
)

// Pinfile records one resolved fetch so the snapshot can be re-verified or
// reproduced later.
//
// Invariants:
// - TreeHash must be set
// - Fetched timestamp must be set
type Pinfile struct {
	Remote     string
	Requested  string // tag name or version constraint as given by the caller
	Resolved   string // tag that was actually fetched
	Commit     string
	TreeHash   values.Digest
	Excludes   []string // glob patterns excluded from the tree digest
	Fetched    time.Time
	PinVersion int
}

// NewPinfile creates a pin record from a completed snapshot.
func NewPinfile(snap *Snapshot, requested string, excludes []string) *Pinfile {
	return &Pinfile{
		Remote:     snap.Remote,
		Requested:  requested,
		Resolved:   snap.Tag,
		Commit:     snap.Commit,
		TreeHash:   snap.TreeHash,
		Excludes:   excludes,
		Fetched:    time.Now().UTC(),
		PinVersion: 1,
	}
}

// Validate checks pinfile invariants.
func (p *Pinfile) Validate() error {
	if p.TreeHash.IsZero() {
		return fmt.Errorf("pinfile: tree hash is required")
	}
	if p.Fetched.IsZero() {
		return fmt.Errorf("pinfile: fetched timestamp is required")
	}
	return nil
}
