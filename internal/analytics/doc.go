// Package analytics computes the read-side views of the workforce dataset.
//
// Every function here is pure: it takes fully loaded record slices and
// returns a summary value ready for JSON encoding. Nothing is cached and no
// function mutates its inputs, so any number of them may run concurrently
// over the same slices. Empty inputs produce zero-valued aggregates and
// empty (never null) JSON arrays.
package analytics
