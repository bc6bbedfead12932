package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(doc map[string]any) *Node {
	return New(doc, NewContext(nil))
}

func TestAttrDefaults(t *testing.T) {
	n := newRoot(map[string]any{"title": "A title"})

	title, err := n.Attr("title")
	require.NoError(t, err)
	assert.Equal(t, "A title", title)

	typ, err := n.Attr("type")
	require.NoError(t, err)
	assert.Equal(t, "object", typ)

	extra, err := n.Attr("additionalProperties")
	require.NoError(t, err)
	assert.Equal(t, true, extra)

	req, err := n.Attr("required")
	require.NoError(t, err)
	assert.Empty(t, req)
}

func TestAttrUnknown(t *testing.T) {
	n := newRoot(map[string]any{"minimum": 3})

	_, err := n.Attr("minimum")
	require.ErrorIs(t, err, ErrUnknownAttr)

	// Raw access bypasses the allow-list.
	v, ok := n.Get("minimum")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, n.Has("minimum"))
	assert.False(t, n.Has("maximum"))
}

func TestGetDistinguishesAbsent(t *testing.T) {
	n := newRoot(map[string]any{"additionalProperties": false})

	v, ok := n.Get("additionalProperties")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = newRoot(map[string]any{}).Get("additionalProperties")
	assert.False(t, ok)
}

func TestRootIdentity(t *testing.T) {
	doc := map[string]any{"properties": map[string]any{}}
	root := newRoot(doc)

	assert.True(t, root.IsRoot())

	child := root.Child(map[string]any{"type": "string"}, "")
	assert.False(t, child.IsRoot())
	assert.Same(t, root, child.Root())

	// Root propagates transitively, never the immediate parent.
	grandchild := child.Child(map[string]any{}, "")
	assert.Same(t, root, grandchild.Root())

	// A root wrapping an identical document is still a distinct root.
	other := newRoot(doc)
	assert.NotSame(t, root, other.Root())
	assert.True(t, other.IsRoot())
}

func TestClassname(t *testing.T) {
	root := newRoot(map[string]any{
		"definitions": map[string]any{
			"my-def": map[string]any{"type": "string"},
		},
	})

	name, err := root.Classname()
	require.NoError(t, err)
	assert.Equal(t, DefaultRootName, name)

	named := root.Child(map[string]any{"type": "string"}, "my-def")
	name, err = named.Classname()
	require.NoError(t, err)
	assert.Equal(t, "my_def", name)

	ref := root.Child(map[string]any{"$ref": "#/definitions/my-def"}, "")
	name, err = ref.Classname()
	require.NoError(t, err)
	assert.Equal(t, "my_def", name)

	anonymous := root.Child(map[string]any{"type": "string"}, "")
	_, err = anonymous.Classname()
	require.ErrorIs(t, err, ErrNoClassname)
	assert.Contains(t, err.Error(), "type")
}

func TestClassnameUsesConfiguredRootName(t *testing.T) {
	ctx := NewContext(nil)
	ctx.RootName = "Chart"

	root := New(map[string]any{}, ctx)

	name, err := root.Classname()
	require.NoError(t, err)
	assert.Equal(t, "Chart", name)
}

func TestKeysSorted(t *testing.T) {
	n := newRoot(map[string]any{"type": "object", "enum": []any{}, "default": nil})
	assert.Equal(t, []string{"default", "enum", "type"}, n.Keys())
}

func TestRequired(t *testing.T) {
	n := newRoot(map[string]any{"required": []any{"a", "b"}})
	assert.Equal(t, []string{"a", "b"}, n.Required())

	assert.Empty(t, newRoot(map[string]any{}).Required())
}

func TestSchemaHash(t *testing.T) {
	doc := map[string]any{"type": "string"}

	first, err := newRoot(doc).SchemaHash()
	require.NoError(t, err)

	second, err := newRoot(map[string]any{"type": "string"}).SchemaHash()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
