package ports

// VersionComparator is the injected version-ordering capability.
// The subsystem never parses version syntax itself; any spec-compliant
// semantic-version implementation can back this interface.
type VersionComparator interface {
	// Less reports whether version a has strictly lower precedence than b.
	// Inputs are bare version strings without the tag prefix. Versions that
	// cannot be parsed sort below every parseable version.
	Less(a, b string) bool

	// Satisfies reports whether version satisfies the range constraint.
	// Unparseable versions and unparseable constraints never satisfy.
	Satisfies(version, constraint string) bool
}
