package extract

import (
	"strings"

	"traitgen/internal/schema"
)

// Object renders keyed object schemas as full trait-bearing classes. It is
// the catch-all at the end of the rule set: it also claims bare
// {"type": "object"} schemas with no properties.
type Object struct {
	fromSchemaImport
	objectPriority
	noImports
}

func (Object) Applies(n *schema.Node) (bool, error) {
	obj, err := n.IsObject()
	if err != nil {
		return false, err
	}

	if obj {
		return true, nil
	}

	t, ok := n.Type().(string)

	return ok && t == "object", nil
}

func (Object) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return callExpr("jst.JSONInstance", []string{localname(classname)}, opts), nil
}

func (Object) Object(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	var b classBuilder

	b.header(classname, "jst.JSONHasTraits")
	b.docstring(classname, n.Description())

	additional, err := additionalTraits(n)
	if err != nil {
		return "", err
	}

	b.line("_additional_traits = " + additional)

	traitMap := n.TraitMap()

	required := n.Required()
	if len(required) > 0 {
		names := make([]string, len(required))

		for i, key := range required {
			name, ok := traitMap[key]
			if !ok {
				name = key
			}

			names[i] = pyQuote(name)
		}

		b.line("_required_traits = [" + strings.Join(names, ", ") + "]")
	}

	properties, err := n.WrappedProperties()
	if err != nil {
		return "", err
	}

	for _, prop := range properties {
		trait, err := prop.Node.TraitCode()
		if err != nil {
			return "", err
		}

		b.line(prop.Trait + " = " + trait)
	}

	return b.String(), nil
}

func (Object) Description(*schema.Node) (string, error) {
	return "object", nil
}

// additionalTraits renders the _additional_traits class attribute: a bool
// passes through as a literal, a subschema becomes a single-element list of
// its trait expression.
func additionalTraits(n *schema.Node) (string, error) {
	switch extra := n.AdditionalProperties().(type) {
	case bool:
		return pyLiteral(extra), nil
	case map[string]any:
		trait, err := n.Child(extra, "").TraitCode()
		if err != nil {
			return "", err
		}

		return "[" + trait + "]", nil
	default:
		return pyLiteral(true), nil
	}
}

// unionObject is the shared body of the object-level union rules: unions
// where every branch classifies as an object become a dispatching class
// holding the branch instance traits.
type unionObject struct {
	fromSchemaImport
	objectPriority

	keyword   string
	baseclass string
	wrapper   string
}

func (u unionObject) Applies(n *schema.Node) (bool, error) {
	if !n.Has(u.keyword) {
		return false, nil
	}

	return n.IsObject()
}

func (u unionObject) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
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

func (u unionObject) Object(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

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

	var b classBuilder

	b.header(classname, u.baseclass)
	b.docstring(classname, n.Description())
	b.line("_classes = [" + strings.Join(traits, ", ") + "]")

	return b.String(), nil
}

func (u unionObject) TraitImports(n *schema.Node) ([]string, error) {
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

func (u unionObject) Description(n *schema.Node) (string, error) {
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

	return u.keyword + "Object(" + strings.Join(descs, ", ") + ")", nil
}

// AnyOfObject renders anyOf unions whose branches are all objects.
type AnyOfObject struct{ unionObject }

// OneOfObject renders oneOf unions whose branches are all objects.
type OneOfObject struct{ unionObject }

// AllOfObject renders allOf unions whose branches are all objects.
type AllOfObject struct{ unionObject }
