// Package main hosts the plagcheck CLI entrypoint and command graph.
//
// The root command compares a suspect document against an original and prints
// the overlap percentage as a single line. Subcommands scan a directory of
// originals, inspect synonym files, manage the comparison history, and
// scaffold configuration. Errors are printed on stderr and mapped to exit
// codes by their faults kind.
//
// Keep this package lean: comparison behaviour lives in internal/compare and
// its helpers; commands only resolve inputs and render results.
package main
