package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedDefinitionsRoundTrip(t *testing.T) {
	root := newRoot(map[string]any{
		"definitions": map[string]any{
			"Zebra":   map[string]any{"type": "string"},
			"ALPHA":   map[string]any{"type": "integer"},
			"mid-def": map[string]any{"type": "boolean"},
		},
	})

	defs, err := root.WrappedDefinitions()
	require.NoError(t, err)
	require.Len(t, defs, 3)

	// Lexical by original name, keyed by normalized name.
	assert.Equal(t, "alpha", defs[0].Key)
	assert.Equal(t, "ALPHA", defs[0].Name)
	assert.Equal(t, "zebra", defs[2].Key)

	for _, def := range defs {
		classname, err := def.Node.Classname()
		require.NoError(t, err)
		assert.NotEmpty(t, classname)
		assert.Same(t, root, def.Node.Root())
	}

	// Regularized classname survives regardless of casing.
	classname, err := defs[1].Node.Classname()
	require.NoError(t, err)
	assert.Equal(t, "mid_def", classname)
}

func TestWrappedProperties(t *testing.T) {
	root := newRoot(map[string]any{
		"properties": map[string]any{
			"b-key": map[string]any{"type": "string"},
			"a-key": map[string]any{"type": "integer"},
			"for":   map[string]any{"type": "boolean"},
		},
	})

	props, err := root.WrappedProperties()
	require.NoError(t, err)
	require.Len(t, props, 3)

	// Lexical by schema key.
	assert.Equal(t, "a-key", props[0].Key)
	assert.Equal(t, "a_key", props[0].Trait)
	assert.Equal(t, "for", props[2].Key)
	assert.Equal(t, "for_", props[2].Trait)

	// Property children are anonymous; naming lives in the trait map.
	for _, prop := range props {
		assert.Empty(t, prop.Node.Name())
		assert.Same(t, root, prop.Node.Root())
	}

	reverse := root.ReverseTraitMap()
	assert.Equal(t, "b-key", reverse["b_key"])
	assert.Equal(t, "for", reverse["for_"])
}

func TestObjectImports(t *testing.T) {
	rule := &fakeRule{kind: "prop", priority: 1, match: matchAll}

	ctx := NewContext([]Rule{rule})
	ctx.BaseImports = []string{"import base"}

	root := New(map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{"type": "integer"},
		},
		"additionalProperties": map[string]any{"type": "string"},
	}, ctx)

	imports, err := root.ObjectImports()
	require.NoError(t, err)

	// Deduplicated (both properties and additionalProperties contribute
	// "import prop") and reverse-sorted.
	assert.Equal(t, []string{"import prop", "import base"}, imports)
}

func TestObjectImportsIncludesRefTarget(t *testing.T) {
	rule := &fakeRule{kind: "any", priority: 1, match: matchAll}

	ctx := NewContext([]Rule{rule})
	ctx.BaseImports = []string{"import base"}

	root := New(map[string]any{
		"definitions": map[string]any{
			"Target": map[string]any{"properties": map[string]any{}},
		},
	}, ctx)

	refNode := root.Child(map[string]any{"$ref": "#/definitions/Target"}, "")

	imports, err := refNode.ObjectImports()
	require.NoError(t, err)
	assert.Contains(t, imports, "from .schema import Target")
}

func TestModuleClassesOrdering(t *testing.T) {
	enumRule := &fakeRule{kind: "enum", priority: 1, match: matchEnum}
	objectRule := &fakeRule{kind: "object", priority: 2, match: matchAll}

	ctx := NewContext([]Rule{enumRule, objectRule})

	root := New(map[string]any{
		"definitions": map[string]any{
			"Zed":    map[string]any{"enum": []any{"a"}},
			"Apple":  map[string]any{"properties": map[string]any{}},
			"Banana": map[string]any{"enum": []any{"b"}},
		},
	}, ctx)

	classes, err := root.ModuleClasses()
	require.NoError(t, err)
	require.Len(t, classes, 4)

	var order []string

	for _, cls := range classes {
		classname, err := cls.Classname()
		require.NoError(t, err)

		order = append(order, classname)
	}

	// Priority groups first (enums), classname breaks ties; the root sorts
	// within the object group.
	assert.Equal(t, []string{"Banana", "Zed", "Apple", DefaultRootName}, order)
}

type fakePlugin struct {
	imports []string
	files   map[string]string
}

func (p fakePlugin) ModuleImports(*Node) ([]string, error) { return p.imports, nil }

func (p fakePlugin) CodeFiles(*Node) (map[string]string, error) { return p.files, nil }

func TestModuleImportsOrder(t *testing.T) {
	rule := &fakeRule{kind: "any", priority: 1, match: matchAll}

	ctx := NewContext([]Rule{rule})
	ctx.AddPlugins(fakePlugin{imports: []string{"import plug_b", "import plug_a"}})

	root := New(map[string]any{
		"definitions": map[string]any{
			"Zed":   map[string]any{"enum": []any{"a"}},
			"Apple": map[string]any{"properties": map[string]any{}},
		},
	}, ctx)

	imports, err := root.ModuleImports()
	require.NoError(t, err)

	// Root import first, then sorted definition imports, then sorted
	// plugin imports.
	assert.Equal(t, []string{
		"from .schema import " + DefaultRootName,
		"from .schema import Apple",
		"from .schema import Zed",
		"import plug_a",
		"import plug_b",
	}, imports)
}
