// Package algo implements the sequence algorithms over explicit bounds.
//
// Every function takes the range together with the half-open interval
// [from, to) it operates on and is written against the weakest capability it
// needs: reading algorithms accept ranges.Input, in-place compaction only
// needs ranges.SemiOutput, and writing a value from elsewhere needs
// ranges.Output.
//
// The algorithms never report errors. Preconditions (a destination large
// enough for what is written, positions inside their range) are the caller's
// responsibility; adapters bounds-check element access and ranges.Checked
// turns a violation into an error.
//
// Each call runs synchronously to completion and needs exclusive access to
// the ranges it mutates for its duration. Nothing is shared between calls.
package algo
