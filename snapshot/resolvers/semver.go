package resolvers

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SemverComparator implements ports.VersionComparator using Masterminds/semver.
type SemverComparator struct{}

// NewSemverComparator creates a new SemverComparator.
func NewSemverComparator() *SemverComparator {
	return &SemverComparator{}
}

// Less reports whether a has strictly lower precedence than b.
// Unparseable versions sort below every parseable version; when both sides
// are unparseable the comparison falls back to lexicographic order so the
// overall sort stays deterministic.
func (c *SemverComparator) Less(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b) < 0
	case errA != nil:
		return true
	case errB != nil:
		return false
	}

	return va.LessThan(vb)
}

// Satisfies reports whether version satisfies the range constraint.
// "latest" is accepted as a constraint meaning any version.
func (c *SemverComparator) Satisfies(version, constraint string) bool {
	if constraint == "latest" {
		constraint = ">= 0"
	}

	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return false
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}

	return cons.Check(v)
}
