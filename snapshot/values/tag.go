package values

// TagRecord is one remote tag and the object hashes it resolves to.
// A lightweight tag points straight at a commit; an annotated tag is its own
// object whose dereferenced form carries the commit. Both hashes are retained
// because signature verification targets differ by tag kind.
type TagRecord struct {
	// Name is the tag name without the refs/tags/ prefix.
	Name string

	// CommitHash is the hash from the plain ref listing. For annotated tags
	// this is the tag object itself, not the commit it points to.
	CommitHash string

	// AnnotatedHash is the dereferenced hash from the ^{} listing, set only
	// for annotated tags. When present it is the underlying commit.
	AnnotatedHash string
}

// Target returns the commit hash a signature check should be anchored to:
// the dereferenced hash when the tag is annotated, the plain hash otherwise.
func (t TagRecord) Target() string {
	if t.AnnotatedHash != "" {
		return t.AnnotatedHash
	}
	return t.CommitHash
}
