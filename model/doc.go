// Package model provides the shared value types for outline extraction.
//
// The [Outline] type is the sole externally visible artifact of a pipeline
// run: a document title plus an ordered list of [Heading] entries. Geometric
// primitives ([Point], [BBox]) support the position calculations performed
// by the detection stages.
//
// All coordinates use a top-origin convention: Y increases downward, so
// sorting headings by (Page, Y) ascending yields reading order.
package model
