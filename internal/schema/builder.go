package schema

import (
	"fmt"
	"sort"

	"traitgen/internal/names"
)

// Definition is one named definition wrapped as a child node, keyed by the
// normalized (lower-cased) definition name.
type Definition struct {
	Key  string
	Name string
	Node *Node
}

// Property is one property wrapped as an anonymous child node, together
// with the regularized, collision-free trait identifier derived from its
// schema key.
type Property struct {
	Key   string
	Trait string
	Node  *Node
}

// DefinitionNames returns the names under the node's definitions keyword,
// sorted lexically.
func (n *Node) DefinitionNames() []string {
	defs := n.Definitions()

	out := make([]string, 0, len(defs))
	for name := range defs {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// WrappedDefinitions wraps each definition as a named child node.
// Enumeration order is lexical by original definition name; entry keys are
// the normalized names.
func (n *Node) WrappedDefinitions() ([]Definition, error) {
	defs := n.Definitions()
	out := make([]Definition, 0, len(defs))

	for _, name := range n.DefinitionNames() {
		sub, ok := asSchema(defs[name])
		if !ok {
			return nil, fmt.Errorf("definition %q is not a schema", name)
		}

		out = append(out, Definition{
			Key:  names.Normalize(name),
			Name: name,
			Node: n.Child(sub, name),
		})
	}

	return out, nil
}

// TraitMap maps each property key to its regularized trait identifier.
// Collisions resolve deterministically because keys are processed sorted.
func (n *Node) TraitMap() map[string]string {
	props := n.Properties()

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return names.TraitNameMap(keys)
}

// ReverseTraitMap maps regularized trait identifiers back to the original
// schema keys, so downstream code can cross-reference both.
func (n *Node) ReverseTraitMap() map[string]string {
	traitMap := n.TraitMap()

	out := make(map[string]string, len(traitMap))
	for key, trait := range traitMap {
		out[trait] = key
	}

	return out
}

// WrappedProperties wraps each property of the node's own properties
// keyword as an anonymous child node, ordered lexically by schema key.
func (n *Node) WrappedProperties() ([]Property, error) {
	props := n.Properties()
	traitMap := n.TraitMap()

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]Property, 0, len(keys))

	for _, key := range keys {
		sub, ok := asSchema(props[key])
		if !ok {
			return nil, fmt.Errorf("property %q is not a schema", key)
		}

		out = append(out, Property{
			Key:   key,
			Trait: traitMap[key],
			Node:  n.Child(sub, ""),
		})
	}

	return out, nil
}

// ObjectImports assembles the import list for this node's object
// definition: the fixed base import set, imports pulled from an
// additionalProperties subschema, the resolved target's import statement
// when this node is a reference, and every property's trait-level imports.
// The result is deduplicated and sorted in reverse lexical order.
func (n *Node) ObjectImports() ([]string, error) {
	imports := append([]string(nil), n.ctx.BaseImports...)

	if extra, ok := asSchema(n.AdditionalProperties()); ok {
		childImports, err := n.Child(extra, "").TraitImports()
		if err != nil {
			return nil, err
		}

		imports = append(imports, childImports...)
	}

	if n.IsReference() {
		ref, err := n.WrappedRef()
		if err != nil {
			return nil, err
		}

		statement, err := ref.ImportStatement()
		if err != nil {
			return nil, err
		}

		imports = append(imports, statement)
	}

	properties, err := n.WrappedProperties()
	if err != nil {
		return nil, err
	}

	for _, prop := range properties {
		traitImports, err := prop.Node.TraitImports()
		if err != nil {
			return nil, err
		}

		imports = append(imports, traitImports...)
	}

	seen := make(map[string]struct{}, len(imports))
	out := make([]string, 0, len(imports))

	for _, imp := range imports {
		if _, dup := seen[imp]; dup || imp == "" {
			continue
		}

		seen[imp] = struct{}{}

		out = append(out, imp)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(out)))

	return out, nil
}

// ModuleClasses returns the emission-ordered class list for the whole
// module: the root node plus every wrapped definition, sorted by
// (extractor priority, classname).
//
// The order groups structurally similar classes and breaks ties
// deterministically; generated code may contain forward name references, so
// the order never affects correctness, only readability.
func (n *Node) ModuleClasses() ([]*Node, error) {
	defs, err := n.WrappedDefinitions()
	if err != nil {
		return nil, err
	}

	type entry struct {
		node      *Node
		priority  int
		classname string
	}

	entries := make([]entry, 0, len(defs)+1)

	nodes := make([]*Node, 0, len(defs)+1)
	nodes = append(nodes, n)

	for _, def := range defs {
		nodes = append(nodes, def.Node)
	}

	for _, node := range nodes {
		rule, err := node.Extractor()
		if err != nil {
			return nil, err
		}

		classname, err := node.Classname()
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry{node: node, priority: rule.Priority(), classname: classname})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}

		return entries[i].classname < entries[j].classname
	})

	out := make([]*Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}

	return out, nil
}

// ModuleImports assembles the top-level import list for the emitted module:
// the root's own import statement, each definition's import statement
// (sorted), then any plugin-contributed imports, in that fixed order.
func (n *Node) ModuleImports() ([]string, error) {
	rootImport, err := n.ImportStatement()
	if err != nil {
		return nil, err
	}

	imports := []string{rootImport}

	defs, err := n.WrappedDefinitions()
	if err != nil {
		return nil, err
	}

	defImports := make([]string, 0, len(defs))

	for _, def := range defs {
		statement, err := def.Node.ImportStatement()
		if err != nil {
			return nil, err
		}

		defImports = append(defImports, statement)
	}

	sort.Strings(defImports)

	imports = append(imports, defImports...)

	for _, plugin := range n.ctx.Plugins {
		pluginImports, err := plugin.ModuleImports(n)
		if err != nil {
			return nil, err
		}

		pluginImports = append([]string(nil), pluginImports...)
		sort.Strings(pluginImports)

		imports = append(imports, pluginImports...)
	}

	return imports, nil
}
