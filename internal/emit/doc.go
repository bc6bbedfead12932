// Package emit turns a compiled schema graph into the emitted module: it
// renders the ordered class list through text/template, assembles the
// {relative path: content} source tree, and writes it to disk.
//
// Emission is deterministic: given the same document, configuration, and
// clock, the tree is byte-identical between runs.
package emit
