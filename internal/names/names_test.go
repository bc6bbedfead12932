package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Color", expected: "Color"},
		{name: "case preserved", input: "COLOR", expected: "COLOR"},
		{name: "dash", input: "foo-bar", expected: "foo_bar"},
		{name: "dots", input: "a.b.c", expected: "a_b_c"},
		{name: "leading digit", input: "2dPoint", expected: "_2dPoint"},
		{name: "reserved word", input: "for", expected: "for_"},
		{name: "dollar", input: "$schema", expected: "_schema"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Regularize(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "color", Normalize("Color"))
	assert.Equal(t, "color", Normalize("COLOR"))
}

func TestTraitNameMap(t *testing.T) {
	m := TraitNameMap([]string{"for", "foo-bar", "foo_bar", "plain"})

	assert.Equal(t, "for_", m["for"])
	assert.Equal(t, "plain", m["plain"])

	// Both keys regularize to foo_bar; the second processed gets a suffix.
	assert.Equal(t, "foo_bar", m["foo-bar"])
	assert.Equal(t, "foo_bar1", m["foo_bar"])
}

func TestTraitNameMapDeterministic(t *testing.T) {
	keys := []string{"a-b", "a_b", "a.b"}

	first := TraitNameMap(keys)
	second := TraitNameMap(keys)

	assert.Equal(t, first, second)

	// Three-way collision: later keys take the lowest free variant.
	assert.Equal(t, map[string]string{
		"a-b": "a_b",
		"a_b": "a_b1",
		"a.b": "a_b2",
	}, first)
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "", Shorten("   ", 10))
	assert.Equal(t, "short text", Shorten("short   text", 70))

	long := Shorten("a description that is far too long to fit in the allotted space for help text", 40)
	assert.LessOrEqual(t, len(long), 40)
	assert.Contains(t, long, "[...]")
}

func TestHashSchema(t *testing.T) {
	a := map[string]any{"type": "object", "properties": map[string]any{"x": map[string]any{}}}
	b := map[string]any{"properties": map[string]any{"x": map[string]any{}}, "type": "object"}

	ha, err := HashSchema(a)
	require.NoError(t, err)

	hb, err := HashSchema(b)
	require.NoError(t, err)

	// Key order never affects the digest.
	assert.Equal(t, ha, hb)

	hc, err := HashSchema(map[string]any{"type": "string"})
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)
}
