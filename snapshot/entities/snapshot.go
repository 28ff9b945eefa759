// Package entities holds the domain objects of the snapshot subsystem.
package entities

import "github.com/sourcepin/sourcepin/snapshot/values"

// Snapshot is the outcome of one trust-anchored retrieval: a checked-out
// working tree, the commit it resolved to, and the reproducibility digest
// over its file tree. Transient: created per fetch, never persisted here
// (the pinfile records the durable facts).
type Snapshot struct {
	// Dir is the destination path holding the checkout.
	Dir string

	// Remote is the repository URL the snapshot came from.
	Remote string

	// Tag is the resolved tag name, empty when the default branch was fetched.
	Tag string

	// Commit is the head commit hash of the checkout.
	Commit string

	// TreeHash is the digest over the canonical file-tree manifest.
	TreeHash values.Digest
}
