package extract

import (
	"fmt"

	"traitgen/internal/schema"
)

// Emission-order groups. Wrapper classes for simple traits emit before
// composite object classes, reference aliases last. Purely cosmetic
// grouping; generated code tolerates forward name references.
const (
	priorityTrait  = 1
	priorityObject = 2
	priorityRef    = 3
)

// BaseImports is the fixed import set included in every generated object
// definition.
var BaseImports = []string{
	"import traitlets as T",
	"from . import jstraitlets as jst",
}

// Default returns the default rule set in dispatch order.
func Default() []schema.Rule {
	return []schema.Rule{
		AnyOfObject{unionObject{keyword: "anyOf", baseclass: "jst.AnyOfObject", wrapper: "jst.JSONAnyOf"}},
		OneOfObject{unionObject{keyword: "oneOf", baseclass: "jst.OneOfObject", wrapper: "jst.JSONOneOf"}},
		AllOfObject{unionObject{keyword: "allOf", baseclass: "jst.AllOfObject", wrapper: "jst.JSONAllOf"}},
		RefObject{},
		RefTrait{},
		Not{},
		AnyOf{unionTrait{keyword: "anyOf", wrapper: "jst.JSONAnyOf"}},
		AllOf{unionTrait{keyword: "allOf", wrapper: "jst.JSONAllOf"}},
		OneOf{unionTrait{keyword: "oneOf", wrapper: "jst.JSONOneOf"}},
		NamedEnum{},
		Enum{},
		SimpleType{},
		CompoundType{},
		Array{},
		EmptySchema{},
		Object{},
	}
}

// NewContext returns a compilation context wired with the default rules and
// base imports.
func NewContext() *schema.Context {
	ctx := schema.NewContext(Default())
	ctx.BaseImports = append([]string(nil), BaseImports...)

	return ctx
}

// importFor is the statement importing a node's generated class from the
// emitted schema module.
func importFor(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return "from .schema import " + classname, nil
}

// localname wraps a classname in the module-relative name helper emitted at
// the top of the schema module.
func localname(classname string) string {
	return fmt.Sprintf("_localname(%s)", pyQuote(classname))
}

// fromSchemaImport is embedded by every rule: generated classes are always
// imported from the emitted schema module.
type fromSchemaImport struct{}

func (fromSchemaImport) ImportStatement(n *schema.Node) (string, error) {
	return importFor(n)
}

// traitPriority marks rules whose classes emit in the simple-wrapper group.
type traitPriority struct{}

func (traitPriority) Priority() int { return priorityTrait }

// objectPriority marks rules whose classes emit in the composite group.
type objectPriority struct{}

func (objectPriority) Priority() int { return priorityObject }

// refPriority marks reference rules, whose classes emit last.
type refPriority struct{}

func (refPriority) Priority() int { return priorityRef }

// noImports is embedded by rules whose trait expressions need no imports
// beyond the base set.
type noImports struct{}

func (noImports) TraitImports(*schema.Node) ([]string, error) { return nil, nil }

// wrapperObject is embedded by trait-level rules: when such a rule renders a
// named definition, the class is a thin value wrapper around the trait
// expression.
type wrapperObject struct{}

func (wrapperObject) Object(n *schema.Node) (string, error) {
	return wrapperClass(n)
}

// wrapperClass renders a named trait definition as a value-wrapper class.
func wrapperClass(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	trait, err := n.TraitCode()
	if err != nil {
		return "", err
	}

	var b classBuilder

	b.header(classname, "jst.JSONWrapper")
	b.docstring(classname, n.Description())
	b.line("value = " + trait)

	return b.String(), nil
}
