package schema

import (
	"fmt"

	"traitgen/internal/names"
)

// TraitOpts carries keyword options appended to a rendered trait expression
// (currently just help text). Rules render entries sorted by key.
type TraitOpts map[string]string

// Rule is one pluggable extractor: it recognizes one schema shape and knows
// how to render it as a trait expression or a full object definition.
//
// The dispatcher walks the ordered rule set and picks the first rule whose
// Applies test passes; the order is a total priority order and part of the
// configuration contract.
type Rule interface {
	// Applies tests whether this rule governs the given node.
	Applies(n *Node) (bool, error)

	// Trait renders the node as a property-level trait expression.
	Trait(n *Node, opts TraitOpts) (string, error)

	// Object renders the node as a full class definition.
	Object(n *Node) (string, error)

	// TraitImports lists imports required by the trait expression alone.
	TraitImports(n *Node) ([]string, error)

	// ImportStatement is the statement importing the node's generated class.
	ImportStatement(n *Node) (string, error)

	// Description is a human-readable summary of the node's type.
	Description(n *Node) (string, error)

	// Priority is the relative emission-order key. Lower emits first; it
	// groups structurally similar classes and never affects correctness.
	Priority() int
}

// Plugin consumes the compiled graph at emission time.
type Plugin interface {
	// ModuleImports returns extra top-level imports for the module.
	ModuleImports(root *Node) ([]string, error)

	// CodeFiles returns extra {relative path: content} entries for the
	// emitted tree.
	CodeFiles(root *Node) (map[string]string, error)
}

// Extractor returns the first rule matching this node, memoized per node
// instance. Re-wrapping the same subtree recomputes: the cache is never
// shared across instances.
func (n *Node) Extractor() (Rule, error) {
	if n.cached != nil {
		return n.cached, nil
	}

	rule, err := n.dispatch()
	if err != nil {
		return nil, err
	}

	n.cached = rule

	return rule, nil
}

// dispatch runs the first-match scan over the ordered rule set.
func (n *Node) dispatch() (Rule, error) {
	for _, rule := range n.ctx.Rules {
		ok, err := rule.Applies(n)
		if err != nil {
			return nil, err
		}

		if ok {
			return rule, nil
		}
	}

	return nil, fmt.Errorf("%w with keys %v", ErrNoExtractor, n.Keys())
}

// TraitCode renders this node as a trait expression, attaching help text
// when the schema carries a description. Each call re-runs the rule scan;
// callers needing a stable pick across queries use Extractor.
func (n *Node) TraitCode() (string, error) {
	opts := TraitOpts{}
	if desc := n.Description(); desc != "" {
		opts["help"] = names.Shorten(desc, 70)
	}

	rule, err := n.dispatch()
	if err != nil {
		return "", err
	}

	return rule.Trait(n, opts)
}

// ObjectCode renders this node as a full class definition. Re-runs the scan.
func (n *Node) ObjectCode() (string, error) {
	rule, err := n.dispatch()
	if err != nil {
		return "", err
	}

	return rule.Object(n)
}

// TraitImports lists imports required by the node's trait expression.
// Re-runs the scan.
func (n *Node) TraitImports() ([]string, error) {
	rule, err := n.dispatch()
	if err != nil {
		return nil, err
	}

	return rule.TraitImports(n)
}

// ImportStatement is the statement importing this node's generated class.
// Uses the memoized pick.
func (n *Node) ImportStatement() (string, error) {
	rule, err := n.Extractor()
	if err != nil {
		return "", err
	}

	return rule.ImportStatement(n)
}

// TypeDescription is a human-readable summary of the node's type. Uses the
// memoized pick.
func (n *Node) TypeDescription() (string, error) {
	rule, err := n.Extractor()
	if err != nil {
		return "", err
	}

	return rule.Description(n)
}
