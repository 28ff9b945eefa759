package ports

import "context"

// TreeLister enumerates the tracked files of a checked-out revision.
// The returned paths are relative to the repository root. Callers must not
// assume any particular order; the digest engine canonicalizes it.
type TreeLister interface {
	ListTree(ctx context.Context, repoPath string) ([]string, error)
}
