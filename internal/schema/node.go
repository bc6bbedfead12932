package schema

import (
	"errors"
	"fmt"
	"sort"

	"traitgen/internal/names"
)

// Sentinel errors for the failure taxonomy. All are fatal within a single
// compilation; none are retried.
var (
	// ErrUnknownAttr signals access to a schema keyword outside the fixed
	// allow-list. This is a programming error in an extractor, not a data
	// error.
	ErrUnknownAttr = errors.New("unknown schema attribute")

	// ErrNoClassname signals a classname request on an anonymous, non-root,
	// non-reference node.
	ErrNoClassname = errors.New("no classname for schema")

	// ErrNoExtractor signals that no rule in the ordered set matched a node.
	ErrNoExtractor = errors.New("no recognized extractor for schema")
)

// DefaultRootName is the classname used for the document root when the
// caller does not configure one.
const DefaultRootName = "Root"

// attrDefaults is the fixed allow-list of recognized schema keywords and the
// value returned when a keyword is absent. Any other keyword is an
// ErrUnknownAttr.
var attrDefaults = map[string]any{
	"title":                "",
	"description":          "",
	"properties":           map[string]any{},
	"definitions":          map[string]any{},
	"default":              nil,
	"examples":             map[string]any{},
	"type":                 "object",
	"required":             []any{},
	"additionalProperties": true,
}

// Context holds the per-compilation configuration shared by every node
// wrapped from one document: the ordered extractor rule set, the root class
// name, the base import set for object definitions, and attached plugins.
//
// A Context is immutable for the duration of a compilation.
type Context struct {
	// RootName is the classname assigned to the document root.
	RootName string

	// Rules is the ordered extractor rule set. Order is a total priority
	// order: earlier rules pre-empt later ones.
	Rules []Rule

	// BaseImports is the fixed import set included in every object
	// definition's import list.
	BaseImports []string

	// Plugins contribute extra module imports and code files at emission.
	Plugins []Plugin
}

// NewContext returns a Context with the given rule set and the default root
// name.
func NewContext(rules []Rule) *Context {
	return &Context{
		RootName: DefaultRootName,
		Rules:    rules,
	}
}

// AddPlugins attaches plugins to the compilation.
func (c *Context) AddPlugins(plugins ...Plugin) {
	c.Plugins = append(c.Plugins, plugins...)
}

// Node is an immutable view over one subtree of a schema document, plus its
// position in that document: an optional definition name and the root node
// it was reached from. A node is the root iff it is its own root (pointer
// identity). Children share the root's Context.
type Node struct {
	ctx    *Context
	schema map[string]any
	name   string
	root   *Node

	// refDepth counts chained $ref resolutions on the path to this node.
	// Resolve bounds it so a reference cycle fails instead of recursing
	// without limit.
	refDepth int

	// cached is the memoized extractor pick. Per node instance only:
	// re-wrapping the same subtree recomputes.
	cached Rule
}

// New wraps a loaded document as a root node.
func New(document map[string]any, ctx *Context) *Node {
	n := &Node{ctx: ctx, schema: document}
	n.root = n

	return n
}

// Child wraps a subschema as a child node. The child's root is this node's
// root (propagated transitively), never this node itself. An empty name
// marks the child anonymous.
func (n *Node) Child(sub map[string]any, name string) *Node {
	return &Node{ctx: n.ctx, schema: sub, name: name, root: n.root, refDepth: n.refDepth}
}

// Schema returns the raw mapping rooted at this node. Shared with the
// document; callers must not mutate it.
func (n *Node) Schema() map[string]any { return n.schema }

// Name returns the explicit definition name, or "" for anonymous nodes.
func (n *Node) Name() string { return n.name }

// Root returns the node wrapping the document root.
func (n *Node) Root() *Node { return n.root }

// Context returns the compilation context.
func (n *Node) Context() *Context { return n.ctx }

// IsRoot reports whether this node is the document root.
func (n *Node) IsRoot() bool { return n == n.root }

// Attr returns the value of a recognized schema keyword, or its documented
// default when absent. Unrecognized keywords fail with ErrUnknownAttr.
func (n *Node) Attr(key string) (any, error) {
	def, ok := attrDefaults[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, key)
	}

	if v, present := n.schema[key]; present {
		return v, nil
	}

	return def, nil
}

// Get reads a key directly from the raw mapping, bypassing the default
// table. Used where "absent" must be distinguished from "present with the
// default value".
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.schema[key]
	return v, ok
}

// Has reports whether the raw mapping contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.schema[key]
	return ok
}

// Keys returns the node's top-level schema keys, sorted. Used in error
// messages for diagnosability.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.schema))
	for k := range n.schema {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Title returns the schema title, or "".
func (n *Node) Title() string {
	v, _ := n.Attr("title")
	s, _ := v.(string)

	return s
}

// Description returns the schema description, or "".
func (n *Node) Description() string {
	v, _ := n.Attr("description")
	s, _ := v.(string)

	return s
}

// Properties returns the properties mapping, or an empty one.
func (n *Node) Properties() map[string]any {
	v, _ := n.Attr("properties")
	m, _ := v.(map[string]any)

	return m
}

// Definitions returns the definitions mapping, or an empty one.
func (n *Node) Definitions() map[string]any {
	v, _ := n.Attr("definitions")
	m, _ := v.(map[string]any)

	return m
}

// Required returns the required property names, or an empty list.
func (n *Node) Required() []string {
	v, _ := n.Attr("required")

	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))

	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// AdditionalProperties returns the additionalProperties value: a bool, a
// schema mapping, or true when absent.
func (n *Node) AdditionalProperties() any {
	v, _ := n.Attr("additionalProperties")
	return v
}

// Type returns the declared type value (a string or a list of strings),
// defaulting to "object".
func (n *Node) Type() any {
	v, _ := n.Attr("type")
	return v
}

// Classname returns the generated identifier for this node: the regularized
// explicit name, the configured root name for the root, or the resolved
// target's classname for a reference. Anything else fails with
// ErrNoClassname.
func (n *Node) Classname() (string, error) {
	switch {
	case n.name != "":
		return names.Regularize(n.name), nil
	case n.IsRoot():
		return n.ctx.RootName, nil
	case n.IsReference():
		ref, err := n.WrappedRef()
		if err != nil {
			return "", err
		}

		return ref.Classname()
	default:
		return "", fmt.Errorf("%w with keys %v", ErrNoClassname, n.Keys())
	}
}

// SchemaHash returns a deterministic digest of the node's subtree, useful
// for plugins that deduplicate structurally identical definitions.
func (n *Node) SchemaHash() (uint64, error) {
	return names.HashSchema(n.schema)
}

// asSchema reports whether a raw schema value is itself a subschema mapping.
func asSchema(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
