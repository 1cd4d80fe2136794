// Package compare wires the text pipeline into a single comparison.
//
// A Comparator is built from validated Options once, before any text is
// touched; a bad tuple length is reported by New rather than per call. Each
// comparison normalizes the original and suspect documents, builds the
// synonym table, extracts and reduces both tuple sequences, and scores them.
// Any failure aborts the comparison with no partial result.
//
// CompareFiles reads the three inputs through a Reader so the pipeline itself
// never touches the filesystem.
package compare
