package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/parser"
)

func TestYamlFetchSpecParser(t *testing.T) {
	t.Parallel()

	data := []byte(`
remote: https://example.com/org/repo.git
constraint: "^1.0.0"
destination: /tmp/checkout
algorithm: sha512
verify: true
excludes:
  - "vendor/**"
`)

	spec, err := parser.NewYamlFetchSpecParser().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/org/repo.git", spec.Remote)
	assert.Equal(t, "^1.0.0", spec.Constraint)
	assert.Equal(t, "/tmp/checkout", spec.Destination)
	assert.Equal(t, "sha512", spec.Algorithm)
	assert.True(t, spec.Verify)
	assert.Equal(t, []string{"vendor/**"}, spec.Excludes)
}

func TestJSONFetchSpecParser(t *testing.T) {
	t.Parallel()

	data := []byte(`{"remote":"git@example.com:repo.git","tag":"v2.0.0","destination":"/tmp/out"}`)

	spec, err := parser.NewJSONFetchSpecParser().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "git@example.com:repo.git", spec.Remote)
	assert.Equal(t, "v2.0.0", spec.Tag)
}

func TestParsers_RejectInvalidSpecs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing remote", yaml: "destination: /tmp/x"},
		{name: "missing destination", yaml: "remote: https://example.com/r.git"},
		{
			name: "tag and constraint together",
			yaml: "remote: r\ndestination: d\ntag: v1.0.0\nconstraint: '^1.0'",
		},
		{
			name: "unknown algorithm",
			yaml: "remote: r\ndestination: d\nalgorithm: md5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.NewYamlFetchSpecParser().Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}
