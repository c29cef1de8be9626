// Package pipeline streams FASTA chunks through a Predictor on a bounded
// worker pool, stitches chunk results back into whole records, drops
// duplicates found by overlapping chunks, and hands records to a visit
// callback in input order.
//
// The only contract to implement is Predictor; *engine.Engine satisfies it.
package pipeline
