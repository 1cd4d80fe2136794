// Package history persists comparison outcomes in SQLite so past runs can be
// listed and audited.
//
// The Store owns the database connection and a sidecar file lock that
// serializes writers across processes. Every recorded Entry carries the run
// ID that also tags the log lines of the run that produced it.
//
// Schema changes bump schemaVersion in schema.go; users delete the database
// to adopt them.
package history
