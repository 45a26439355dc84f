// Package challenge defines the daily puzzle pipeline contract.
//
// A puzzle implements [Challenge] with its own record type R and wrapper type W.
// The pipeline is always the same:
//
//	input -> chunks -> []R -> W -> part 1 -> part 2 -> domain.Report
//
// [Adapt] erases R and W so puzzles of different shapes can sit in one [Catalog]
// and be driven identically. A failure at any stage aborts the pipeline and no
// partial report is produced.
package challenge
