// Package resolvers implements version-tag ordering and constraint matching.
package resolvers

import (
	"sort"
	"strings"

	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// tagPrefix is the literal prefix a tag must carry to be treated as a version.
const tagPrefix = "v"

// TagSelector orders version tags and matches constraints against them.
// Version precedence is delegated entirely to the injected comparator; the
// selector never parses version syntax itself.
type TagSelector struct {
	cmp ports.VersionComparator
}

// NewTagSelector creates a selector backed by the given comparator.
func NewTagSelector(cmp ports.VersionComparator) *TagSelector {
	return &TagSelector{cmp: cmp}
}

// SortTags filters tags to names with the version prefix and orders them by
// version precedence, descending by default. Names without the prefix are
// silently dropped; that is normal filtering, not an error.
//
// The descending comparator returns "before" for any pair that is not
// strictly less-than, so equal-precedence tags may swap positions. Callers
// must not depend on a stable ordering among equal versions.
func (s *TagSelector) SortTags(tags []string, descending bool) []string {
	filtered := make([]string, 0, len(tags))
	for _, t := range tags {
		if strings.HasPrefix(t, tagPrefix) {
			filtered = append(filtered, t)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		a := strings.TrimPrefix(filtered[i], tagPrefix)
		b := strings.TrimPrefix(filtered[j], tagPrefix)
		if descending {
			return !s.cmp.Less(a, b)
		}
		return s.cmp.Less(a, b)
	})

	return filtered
}

// MatchTag returns the highest-precedence tag whose version satisfies the
// constraint, or the empty string when none does. Absence of a match is a
// normal outcome, not a failure.
func (s *TagSelector) MatchTag(tags []string, constraint string) string {
	for _, t := range s.SortTags(tags, true) {
		if s.cmp.Satisfies(strings.TrimPrefix(t, tagPrefix), constraint) {
			return t
		}
	}
	return ""
}
