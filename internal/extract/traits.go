package extract

import (
	"fmt"
	"strings"

	"traitgen/internal/schema"
)

// simpleTraits maps scalar schema types to their trait constructors.
var simpleTraits = map[string]string{
	"string":  "T.Unicode",
	"integer": "T.Int",
	"number":  "T.Float",
	"boolean": "T.Bool",
	"null":    "jst.JSONNull",
}

// SimpleType renders scalar schemas: string, integer, number, boolean, null.
type SimpleType struct {
	fromSchemaImport
	traitPriority
	noImports
	wrapperObject
}

func (SimpleType) Applies(n *schema.Node) (bool, error) {
	t, ok := n.Type().(string)
	if !ok {
		return false, nil
	}

	_, known := simpleTraits[t]

	return known, nil
}

func (SimpleType) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	t, _ := n.Type().(string)
	return callExpr(simpleTraits[t], nil, opts), nil
}

func (SimpleType) Description(n *schema.Node) (string, error) {
	t, _ := n.Type().(string)
	return t, nil
}

// CompoundType renders schemas whose type keyword is a list of scalar
// types, as a union of the member traits.
type CompoundType struct {
	fromSchemaImport
	traitPriority
	noImports
	wrapperObject
}

// compoundTraits extends simpleTraits with fallbacks for container members
// of a type list, which carry no item or property detail of their own.
func compoundTrait(t string) (string, bool) {
	if fn, ok := simpleTraits[t]; ok {
		return fn + "()", true
	}

	switch t {
	case "array":
		return "T.List(T.Any())", true
	case "object":
		return "T.Dict()", true
	default:
		return "", false
	}
}

func typeList(n *schema.Node) ([]string, bool) {
	raw, ok := n.Type().([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(raw))

	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}

		out = append(out, s)
	}

	return out, len(out) > 0
}

func (CompoundType) Applies(n *schema.Node) (bool, error) {
	_, ok := typeList(n)
	return ok, nil
}

func (CompoundType) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	types, _ := typeList(n)
	members := make([]string, 0, len(types))

	for _, t := range types {
		member, ok := compoundTrait(t)
		if !ok {
			return "", fmt.Errorf("unrecognized member %q in type list", t)
		}

		members = append(members, member)
	}

	arg := "[" + strings.Join(members, ", ") + "]"

	return callExpr("jst.JSONUnion", []string{arg}, opts), nil
}

func (CompoundType) Description(n *schema.Node) (string, error) {
	types, _ := typeList(n)
	return "(" + strings.Join(types, "|") + ")", nil
}

// Enum renders inline enumerations.
type Enum struct {
	fromSchemaImport
	traitPriority
	noImports
	wrapperObject
}

func enumValues(n *schema.Node) ([]any, error) {
	v, _ := n.Get("enum")

	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("enum value is not a list")
	}

	return raw, nil
}

func (Enum) Applies(n *schema.Node) (bool, error) {
	return n.Has("enum"), nil
}

func (Enum) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	values, err := enumValues(n)
	if err != nil {
		return "", err
	}

	return callExpr("jst.JSONEnum", []string{pyLiteral(values)}, opts), nil
}

func (Enum) Description(n *schema.Node) (string, error) {
	values, err := enumValues(n)
	if err != nil {
		return "", err
	}

	items := make([]string, len(values))
	for i, v := range values {
		items[i] = pyLiteral(v)
	}

	return "enum(" + strings.Join(items, ", ") + ")", nil
}

// NamedEnum renders enumerations reached as named definitions, which get a
// class of their own so consumers can import and reuse them. The trait
// expression instantiates that class.
type NamedEnum struct {
	Enum
}

func (NamedEnum) Applies(n *schema.Node) (bool, error) {
	if !n.Has("enum") {
		return false, nil
	}

	return n.IsNamedObject()
}

func (NamedEnum) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return callExpr(classname, nil, opts), nil
}

func (NamedEnum) TraitImports(n *schema.Node) ([]string, error) {
	statement, err := n.ImportStatement()
	if err != nil {
		return nil, err
	}

	return []string{statement}, nil
}

func (NamedEnum) Object(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	values, err := enumValues(n)
	if err != nil {
		return "", err
	}

	var b classBuilder

	b.header(classname, "jst.JSONEnum")
	b.docstring(classname, n.Description())
	b.line("values = " + pyLiteral(values))

	return b.String(), nil
}

// Not renders negated schemas.
type Not struct {
	fromSchemaImport
	traitPriority
	wrapperObject
}

func notChild(n *schema.Node) (*schema.Node, error) {
	v, _ := n.Get("not")

	sub, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("\"not\" value is not a schema")
	}

	return n.Child(sub, ""), nil
}

func (Not) Applies(n *schema.Node) (bool, error) {
	return n.Has("not"), nil
}

func (Not) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	child, err := notChild(n)
	if err != nil {
		return "", err
	}

	trait, err := child.TraitCode()
	if err != nil {
		return "", err
	}

	return callExpr("jst.JSONNot", []string{trait}, opts), nil
}

func (Not) TraitImports(n *schema.Node) ([]string, error) {
	child, err := notChild(n)
	if err != nil {
		return nil, err
	}

	return child.TraitImports()
}

func (Not) Description(n *schema.Node) (string, error) {
	child, err := notChild(n)
	if err != nil {
		return "", err
	}

	desc, err := child.TypeDescription()
	if err != nil {
		return "", err
	}

	return "not " + desc, nil
}

// unionTrait is the shared body of the trait-level union rules.
type unionTrait struct {
	fromSchemaImport
	traitPriority
	wrapperObject

	keyword string
	wrapper string
}

func unionBranches(n *schema.Node, keyword string) ([]*schema.Node, error) {
	v, _ := n.Get(keyword)

	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%q value is not a list of schemas", keyword)
	}

	out := make([]*schema.Node, 0, len(raw))

	for _, item := range raw {
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%q contains a non-schema branch", keyword)
		}

		out = append(out, n.Child(sub, ""))
	}

	return out, nil
}

func (u unionTrait) Applies(n *schema.Node) (bool, error) {
	return n.Has(u.keyword), nil
}

func (u unionTrait) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	branches, err := unionBranches(n, u.keyword)
	if err != nil {
		return "", err
	}

	traits := make([]string, len(branches))

	for i, branch := range branches {
		trait, err := branch.TraitCode()
		if err != nil {
			return "", err
		}

		traits[i] = trait
	}

	arg := "[" + strings.Join(traits, ", ") + "]"

	return callExpr(u.wrapper, []string{arg}, opts), nil
}

func (u unionTrait) TraitImports(n *schema.Node) ([]string, error) {
	branches, err := unionBranches(n, u.keyword)
	if err != nil {
		return nil, err
	}

	var imports []string

	for _, branch := range branches {
		branchImports, err := branch.TraitImports()
		if err != nil {
			return nil, err
		}

		imports = append(imports, branchImports...)
	}

	return imports, nil
}

func (u unionTrait) Description(n *schema.Node) (string, error) {
	branches, err := unionBranches(n, u.keyword)
	if err != nil {
		return "", err
	}

	descs := make([]string, len(branches))

	for i, branch := range branches {
		desc, err := branch.TypeDescription()
		if err != nil {
			return "", err
		}

		descs[i] = desc
	}

	return u.keyword + "(" + strings.Join(descs, ", ") + ")", nil
}

// AnyOf renders anyOf unions whose branches are not all objects.
type AnyOf struct{ unionTrait }

// AllOf renders allOf unions whose branches are not all objects.
type AllOf struct{ unionTrait }

// OneOf renders oneOf unions whose branches are not all objects.
type OneOf struct{ unionTrait }

// Array renders array schemas: a homogeneous items schema becomes a typed
// list, a tuple-style items list becomes a fixed-shape array, and absent
// items fall back to a list of anything.
type Array struct {
	fromSchemaImport
	traitPriority
	wrapperObject
}

func (Array) Applies(n *schema.Node) (bool, error) {
	t, ok := n.Type().(string)
	return ok && t == "array", nil
}

func (Array) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	items, present := n.Get("items")
	if !present {
		return callExpr("T.List", []string{"T.Any()"}, opts), nil
	}

	switch it := items.(type) {
	case map[string]any:
		itemTrait, err := n.Child(it, "").TraitCode()
		if err != nil {
			return "", err
		}

		return callExpr("T.List", []string{itemTrait}, opts), nil
	case []any:
		traits := make([]string, len(it))

		for i, item := range it {
			sub, ok := item.(map[string]any)
			if !ok {
				return "", fmt.Errorf("\"items\" contains a non-schema entry")
			}

			trait, err := n.Child(sub, "").TraitCode()
			if err != nil {
				return "", err
			}

			traits[i] = trait
		}

		arg := "[" + strings.Join(traits, ", ") + "]"

		return callExpr("jst.JSONArray", []string{arg}, opts), nil
	default:
		return "", fmt.Errorf("\"items\" value is not a schema or schema list")
	}
}

func (Array) TraitImports(n *schema.Node) ([]string, error) {
	items, present := n.Get("items")
	if !present {
		return nil, nil
	}

	var children []*schema.Node

	switch it := items.(type) {
	case map[string]any:
		children = append(children, n.Child(it, ""))
	case []any:
		for _, item := range it {
			if sub, ok := item.(map[string]any); ok {
				children = append(children, n.Child(sub, ""))
			}
		}
	}

	var imports []string

	for _, child := range children {
		childImports, err := child.TraitImports()
		if err != nil {
			return nil, err
		}

		imports = append(imports, childImports...)
	}

	return imports, nil
}

func (Array) Description(n *schema.Node) (string, error) {
	items, present := n.Get("items")

	sub, ok := items.(map[string]any)
	if !present || !ok {
		return "array(any)", nil
	}

	itemDesc, err := n.Child(sub, "").TypeDescription()
	if err != nil {
		return "", err
	}

	return "array(" + itemDesc + ")", nil
}

// nonStructuralKeys are annotation keywords that do not constrain a value.
var nonStructuralKeys = map[string]struct{}{
	"title":       {},
	"description": {},
	"default":     {},
	"examples":    {},
}

// EmptySchema renders schemas with no structural constraints, which accept
// any value.
type EmptySchema struct {
	fromSchemaImport
	traitPriority
	noImports
	wrapperObject
}

func (EmptySchema) Applies(n *schema.Node) (bool, error) {
	for _, key := range n.Keys() {
		if _, ok := nonStructuralKeys[key]; !ok {
			return false, nil
		}
	}

	return true, nil
}

func (EmptySchema) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	return callExpr("jst.JSONAny", nil, opts), nil
}

func (EmptySchema) Description(*schema.Node) (string, error) {
	return "any", nil
}
