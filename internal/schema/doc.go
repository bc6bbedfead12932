// Package schema wraps a JSON Schema document (draft 4) as a graph of nodes
// and implements the compiler core: attribute access with a fixed keyword
// allow-list, structural classification (trait vs. object), document-absolute
// $ref resolution, first-match extractor dispatch with per-node memoization,
// and the definition/property graph used for module emission.
//
// Compilation pipeline:
//  1. Load document (JSON or YAML) → map[string]any
//  2. Wrap as root Node with a Context (root name, rule set, plugins)
//  3. Classify nodes and dispatch extractor rules per node
//  4. Build ordered class list + deduplicated import lists
//  5. Hand the ordered graph to the emitter
//
// Everything is synchronous and side-effect free over an immutable document;
// the only mutable state is each node's private memoized extractor pick.
package schema
