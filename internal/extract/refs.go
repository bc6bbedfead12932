package extract

import "traitgen/internal/schema"

// RefObject renders references whose resolved target is an object
// definition. The property trait instantiates the target class by local
// name; a named definition that is itself a pure reference becomes a
// subclass alias of its target.
type RefObject struct {
	fromSchemaImport
	refPriority
}

func (RefObject) Applies(n *schema.Node) (bool, error) {
	if !n.IsReference() {
		return false, nil
	}

	ref, err := n.WrappedRef()
	if err != nil {
		return false, err
	}

	return ref.IsObject()
}

func (RefObject) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return callExpr("jst.JSONInstance", []string{localname(classname)}, opts), nil
}

func (RefObject) Object(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	ref, err := n.WrappedRef()
	if err != nil {
		return "", err
	}

	target, err := ref.Classname()
	if err != nil {
		return "", err
	}

	var b classBuilder

	b.header(classname, target)
	b.docstring(classname, n.Description())
	b.line("pass")

	return b.String(), nil
}

func (RefObject) TraitImports(n *schema.Node) ([]string, error) {
	ref, err := n.WrappedRef()
	if err != nil {
		return nil, err
	}

	statement, err := ref.ImportStatement()
	if err != nil {
		return nil, err
	}

	return []string{statement}, nil
}

func (RefObject) Description(n *schema.Node) (string, error) {
	classname, err := n.Classname()
	if err != nil {
		return "", err
	}

	return "reference to " + classname, nil
}

// RefTrait renders references whose resolved target is a trait definition.
// A named target renders as its named instance and imports the target's
// class; an anonymous target's trait expression is inlined.
type RefTrait struct {
	fromSchemaImport
	refPriority
	wrapperObject
}

func (RefTrait) Applies(n *schema.Node) (bool, error) {
	if !n.IsReference() {
		return false, nil
	}

	ref, err := n.WrappedRef()
	if err != nil {
		return false, err
	}

	return ref.IsTrait()
}

func (RefTrait) Trait(n *schema.Node, opts schema.TraitOpts) (string, error) {
	ref, err := n.WrappedRef()
	if err != nil {
		return "", err
	}

	named, err := ref.IsNamedObject()
	if err != nil {
		return "", err
	}

	if !named {
		return ref.TraitCode()
	}

	classname, err := ref.Classname()
	if err != nil {
		return "", err
	}

	return callExpr(classname, nil, opts), nil
}

func (RefTrait) TraitImports(n *schema.Node) ([]string, error) {
	ref, err := n.WrappedRef()
	if err != nil {
		return nil, err
	}

	named, err := ref.IsNamedObject()
	if err != nil {
		return nil, err
	}

	if !named {
		return ref.TraitImports()
	}

	statement, err := ref.ImportStatement()
	if err != nil {
		return nil, err
	}

	return []string{statement}, nil
}

func (RefTrait) Description(n *schema.Node) (string, error) {
	ref, err := n.WrappedRef()
	if err != nil {
		return "", err
	}

	desc, err := ref.TypeDescription()
	if err != nil {
		return "", err
	}

	return "reference to " + desc, nil
}
