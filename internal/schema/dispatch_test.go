package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRule is a configurable Rule for exercising the dispatcher without the
// real extractor set.
type fakeRule struct {
	kind     string
	priority int
	match    func(n *Node) bool

	appliesCalls int
}

func (r *fakeRule) Applies(n *Node) (bool, error) {
	r.appliesCalls++
	return r.match(n), nil
}

func (r *fakeRule) Trait(*Node, TraitOpts) (string, error) { return r.kind + "-trait", nil }

func (r *fakeRule) Object(n *Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return r.kind + "-object-" + classname, nil
}

func (r *fakeRule) TraitImports(*Node) ([]string, error) {
	return []string{"import " + r.kind}, nil
}

func (r *fakeRule) ImportStatement(n *Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return "from .schema import " + classname, nil
}

func (r *fakeRule) Description(*Node) (string, error) { return r.kind, nil }

func (r *fakeRule) Priority() int { return r.priority }

func matchAll(*Node) bool { return true }

func matchEnum(n *Node) bool { return n.Has("enum") }

func TestDispatchFirstMatchWins(t *testing.T) {
	enumRule := &fakeRule{kind: "enum", priority: 1, match: matchEnum}
	catchAll := &fakeRule{kind: "any", priority: 2, match: matchAll}

	ctx := NewContext([]Rule{enumRule, catchAll})

	enumNode := New(map[string]any{"enum": []any{1}}, ctx)
	rule, err := enumNode.Extractor()
	require.NoError(t, err)
	assert.Same(t, Rule(enumRule), rule)

	plainNode := New(map[string]any{"type": "string"}, ctx)
	rule, err = plainNode.Extractor()
	require.NoError(t, err)
	assert.Same(t, Rule(catchAll), rule)
}

func TestDispatchMemoizedPerInstance(t *testing.T) {
	rule := &fakeRule{kind: "any", priority: 1, match: matchAll}
	ctx := NewContext([]Rule{rule})

	n := New(map[string]any{"type": "string"}, ctx)

	_, err := n.Extractor()
	require.NoError(t, err)

	_, err = n.Extractor()
	require.NoError(t, err)

	// Repeated queries on the same instance never re-scan.
	assert.Equal(t, 1, rule.appliesCalls)

	// A fresh node wrapping the same subtree re-scans, and picks the same
	// rule kind.
	other := New(map[string]any{"type": "string"}, ctx)

	picked, err := other.Extractor()
	require.NoError(t, err)
	assert.Same(t, Rule(rule), picked)
	assert.Equal(t, 2, rule.appliesCalls)
}

func TestDelegatedOpsRescan(t *testing.T) {
	rule := &fakeRule{kind: "any", priority: 1, match: matchAll}
	ctx := NewContext([]Rule{rule})

	n := New(map[string]any{"type": "string"}, ctx)

	_, err := n.TraitCode()
	require.NoError(t, err)

	_, err = n.TraitImports()
	require.NoError(t, err)

	// Each delegated rendering operation runs its own scan.
	assert.Equal(t, 2, rule.appliesCalls)
}

func TestDispatchNoMatch(t *testing.T) {
	ctx := NewContext(nil)
	n := New(map[string]any{"zzz": 1, "type": "string"}, ctx)

	_, err := n.Extractor()
	require.ErrorIs(t, err, ErrNoExtractor)

	// The error carries the node's top-level keys for diagnosability.
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "zzz")
}

func TestTraitCodeAttachesHelp(t *testing.T) {
	var seen TraitOpts

	rule := &fakeRule{kind: "any", priority: 1, match: matchAll}
	capture := captureRule{fakeRule: rule, opts: &seen}
	ctx := NewContext([]Rule{capture})

	n := New(map[string]any{"type": "string", "description": "A string value"}, ctx)

	_, err := n.TraitCode()
	require.NoError(t, err)
	assert.Equal(t, "A string value", seen["help"])

	// No description, no help option.
	n = New(map[string]any{"type": "string"}, ctx)
	_, err = n.TraitCode()
	require.NoError(t, err)
	assert.Empty(t, seen)
}

// captureRule records the options passed to Trait.
type captureRule struct {
	*fakeRule
	opts *TraitOpts
}

func (c captureRule) Trait(n *Node, opts TraitOpts) (string, error) {
	*c.opts = opts
	return c.fakeRule.Trait(n, opts)
}
