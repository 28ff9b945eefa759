package resolvers_test

import (
	"testing"

	"github.com/sourcepin/sourcepin/snapshot/resolvers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSelector_SortTags(t *testing.T) {
	t.Parallel()

	selector := resolvers.NewTagSelector(resolvers.NewSemverComparator())

	tests := []struct {
		name       string
		tags       []string
		descending bool
		expected   []string
	}{
		{
			name:       "descending default",
			tags:       []string{"v1.0.0", "v2.0.0", "v1.5.0"},
			descending: true,
			expected:   []string{"v2.0.0", "v1.5.0", "v1.0.0"},
		},
		{
			name:       "ascending",
			tags:       []string{"v1.0.0", "v2.0.0", "v1.5.0"},
			descending: false,
			expected:   []string{"v1.0.0", "v1.5.0", "v2.0.0"},
		},
		{
			name:       "non-version names dropped",
			tags:       []string{"v1.0.0", "release-candidate", "HEAD", "v0.9.0"},
			descending: true,
			expected:   []string{"v1.0.0", "v0.9.0"},
		},
		{
			name:       "prerelease below release",
			tags:       []string{"v2.0.0-rc", "v2.0.0", "v1.9.0"},
			descending: true,
			expected:   []string{"v2.0.0", "v2.0.0-rc", "v1.9.0"},
		},
		{
			name:       "empty input",
			tags:       nil,
			descending: true,
			expected:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := selector.SortTags(tc.tags, tc.descending)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// Adjacent elements of a descending sort must never be strictly increasing,
// whatever the input order was.
func TestTagSelector_SortTags_DescendingInvariant(t *testing.T) {
	t.Parallel()

	cmp := resolvers.NewSemverComparator()
	selector := resolvers.NewTagSelector(cmp)

	inputs := [][]string{
		{"v0.1.0", "v10.0.0", "v2.3.4", "v2.3.4-alpha", "v2.3.4+build"},
		{"v3.0.0", "v3.0.0", "v3.0.0"},
		{"v1.0.0", "vnot-a-version", "v1.0.1"},
	}

	for _, tags := range inputs {
		sorted := selector.SortTags(tags, true)
		require.Len(t, sorted, len(tags))
		for i := 1; i < len(sorted); i++ {
			prev := sorted[i-1][1:]
			cur := sorted[i][1:]
			assert.False(t, cmp.Less(prev, cur),
				"descending order violated: %s before %s", sorted[i-1], sorted[i])
		}
	}
}

func TestTagSelector_MatchTag(t *testing.T) {
	t.Parallel()

	selector := resolvers.NewTagSelector(resolvers.NewSemverComparator())

	tests := []struct {
		name       string
		tags       []string
		constraint string
		expected   string
	}{
		{
			name:       "highest satisfying wins",
			tags:       []string{"v1.0.0", "v1.2.0", "v2.0.0-rc"},
			constraint: "^1.0.0",
			expected:   "v1.2.0",
		},
		{
			name:       "exact version",
			tags:       []string{"v1.0.0", "v1.1.0"},
			constraint: "1.0.0",
			expected:   "v1.0.0",
		},
		{
			name:       "tilde range",
			tags:       []string{"v1.2.0", "v1.2.5", "v1.3.0"},
			constraint: "~1.2.0",
			expected:   "v1.2.5",
		},
		{
			name:       "latest",
			tags:       []string{"v1.0.0", "v2.0.0", "v1.5.0"},
			constraint: "latest",
			expected:   "v2.0.0",
		},
		{
			name:       "no satisfying version",
			tags:       []string{"v1.0.0", "v1.9.9"},
			constraint: "^2.0",
			expected:   "",
		},
		{
			name:       "invalid constraint matches nothing",
			tags:       []string{"v1.0.0"},
			constraint: "not-a-range",
			expected:   "",
		},
		{
			name:       "unparseable tags never satisfy",
			tags:       []string{"vgarbage", "v1.1.0"},
			constraint: "^1.0",
			expected:   "v1.1.0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := selector.MatchTag(tc.tags, tc.constraint)
			assert.Equal(t, tc.expected, got)
		})
	}
}
