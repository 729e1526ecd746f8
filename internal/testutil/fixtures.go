// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// CaseFixture is one entry of a casing corpus file.
// Nil flags mean the library default applies.
type CaseFixture struct {
	Name                string `yaml:"name"`
	Input               string `yaml:"input"`
	TrimLeadingSpaces   *bool  `yaml:"trim_leading_spaces,omitempty"`
	UppercaseAsAcronyms *bool  `yaml:"uppercase_as_acronyms,omitempty"`
	Title               string `yaml:"title"`
	Pascal              string `yaml:"pascal"`
	Camel               string `yaml:"camel"`
}

// Trim returns the effective trim_leading_spaces flag.
func (f CaseFixture) Trim() bool {
	return f.TrimLeadingSpaces == nil || *f.TrimLeadingSpaces
}

// Acronyms returns the effective uppercase_as_acronyms flag.
func (f CaseFixture) Acronyms() bool {
	return f.UppercaseAsAcronyms == nil || *f.UppercaseAsAcronyms
}

// LoadCases reads a YAML casing corpus and fails the test if the file is
// missing, malformed, or empty.
func LoadCases(t testing.TB, path string) []CaseFixture {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading fixture %s", path)

	var cases []CaseFixture
	require.NoError(t, yaml.Unmarshal(data, &cases), "decoding fixture %s", path)
	require.NotEmpty(t, cases, "fixture %s has no cases", path)

	for i, c := range cases {
		require.NotEmpty(t, c.Name, "fixture %s: case %d has no name", path, i)
	}
	return cases
}

// Bool returns a pointer to b, for building fixtures in code.
func Bool(b bool) *bool {
	return &b
}
