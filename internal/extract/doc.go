// Package extract implements the default extractor rule set: one rule per
// recognized schema shape, each able to render a node as a traitlets trait
// expression or as a full class definition.
//
// Rule order is significant and is part of the configuration contract:
// general rules (object unions, references) pre-empt narrower ones (plain
// object), so Default() must stay in dispatch order, not alphabetical.
package extract
