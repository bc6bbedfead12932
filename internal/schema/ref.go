package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRefFormat signals a malformed $ref string: empty, or not anchored
	// at the document root.
	ErrRefFormat = errors.New("unrecognized $ref format")

	// ErrRefNotFound signals a well-formed $ref whose path is missing from
	// the document.
	ErrRefNotFound = errors.New("$ref not present in the schema")
)

// maxRefDepth bounds chained reference resolution. Classification recurses
// through resolved targets, so a pure-reference cycle would otherwise never
// terminate; no real document chains anywhere near this many links.
const maxRefDepth = 64

// IsReference reports whether the node's mapping contains $ref.
func (n *Node) IsReference() bool { return n.Has("$ref") }

// WrappedRef resolves the node's own $ref value against the root document.
func (n *Node) WrappedRef() (*Node, error) {
	v, _ := n.Get("$ref")

	ref, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: $ref value %v is not a string", ErrRefFormat, v)
	}

	return n.Resolve(ref)
}

// Resolve returns the node a reference string points at.
//
// References are document-absolute JSON-pointer paths resolved against the
// root's document, never against this node's own subtree. Accepted forms are
// "#" (the root itself) and "#/definitions/<Name>"-style paths. Anything not
// anchored at "#" is rejected with ErrRefFormat.
func (n *Node) Resolve(ref string) (*Node, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrRefFormat)
	}

	if n.refDepth >= maxRefDepth {
		return nil, fmt.Errorf("%w: reference chain through %q exceeds %d links (circular reference?)",
			ErrRefFormat, ref, maxRefDepth)
	}

	path := strings.Split(ref, "/")
	if path[0] != "#" {
		return nil, fmt.Errorf("%w: %q (leading segment %q)", ErrRefFormat, ref, path[0])
	}

	if len(path) == 1 || path[1] == "" {
		return n.root, nil
	}

	current := any(n.root.schema)
	for _, key := range path[1:] {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrRefNotFound, ref)
		}

		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrRefNotFound, ref)
		}
	}

	target, ok := current.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not point at a schema", ErrRefNotFound, ref)
	}

	child := n.Child(target, path[len(path)-1])
	child.refDepth = n.refDepth + 1

	return child, nil
}
