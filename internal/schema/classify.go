package schema

import (
	"errors"
	"fmt"
)

// unionKeywords in classification precedence order: only the first keyword
// present on a node is consulted.
var unionKeywords = [...]string{"anyOf", "allOf", "oneOf"}

// IsTrait reports whether the node renders as a property-level trait rather
// than a full object definition.
//
// Decision table, evaluated in order: properties present → false; declared
// type other than "object" → true; enum present → true; $ref → classify the
// resolved target; union keyword → true iff any branch is a trait; else
// false.
func (n *Node) IsTrait() (bool, error) {
	if n.Has("properties") {
		return false, nil
	}

	if !isObjectType(n.Type()) {
		return true, nil
	}

	if n.Has("enum") {
		return true, nil
	}

	if n.IsReference() {
		ref, err := n.WrappedRef()
		if err != nil {
			return false, err
		}

		return ref.IsTrait()
	}

	for _, kw := range unionKeywords {
		branches, present, err := n.branchSchemas(kw)
		if err != nil {
			return false, err
		}

		if !present {
			continue
		}

		for _, branch := range branches {
			trait, err := n.Child(branch, "").IsTrait()
			if err != nil {
				return false, err
			}

			if trait {
				return true, nil
			}
		}

		return false, nil
	}

	return false, nil
}

// IsObject reports whether the node renders as a full object definition:
// properties present → true; $ref → classify the resolved target; union
// keyword → true iff every branch is an object; else false.
//
// Note the asymmetry with IsTrait: a bare {"type": "object"} with no
// properties is neither a trait nor an object.
func (n *Node) IsObject() (bool, error) {
	if n.Has("properties") {
		return true, nil
	}

	if n.IsReference() {
		ref, err := n.WrappedRef()
		if err != nil {
			return false, err
		}

		return ref.IsObject()
	}

	for _, kw := range unionKeywords {
		branches, present, err := n.branchSchemas(kw)
		if err != nil {
			return false, err
		}

		if !present {
			continue
		}

		for _, branch := range branches {
			obj, err := n.Child(branch, "").IsObject()
			if err != nil {
				return false, err
			}

			if !obj {
				return false, nil
			}
		}

		return true, nil
	}

	return false, nil
}

// IsNamedObject reports whether a classname is resolvable for this node.
// A missing classname collapses to false; reference errors propagate.
func (n *Node) IsNamedObject() (bool, error) {
	classname, err := n.Classname()
	if errors.Is(err, ErrNoClassname) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return classname != "", nil
}

// branchSchemas returns the subschema list under a union keyword.
func (n *Node) branchSchemas(keyword string) ([]map[string]any, bool, error) {
	v, ok := n.Get(keyword)
	if !ok {
		return nil, false, nil
	}

	raw, ok := v.([]any)
	if !ok {
		return nil, false, fmt.Errorf("%q value is not a list of schemas", keyword)
	}

	branches := make([]map[string]any, 0, len(raw))

	for _, item := range raw {
		branch, ok := asSchema(item)
		if !ok {
			return nil, false, fmt.Errorf("%q contains a non-schema branch", keyword)
		}

		branches = append(branches, branch)
	}

	return branches, true, nil
}

// isObjectType reports whether a declared type value is exactly "object".
// Type lists always classify as non-object.
func isObjectType(v any) bool {
	s, ok := v.(string)
	return ok && s == "object"
}
