// Package external runs the command-line tools rendezvous depends on and
// carries their results back to the pipelines.
//
// A fetch either yields records or fails. Outcome keeps the two apart, and
// Resolve applies the caller's Policy: FailOpen logs the failure and
// continues with no records, Strict hands the error back so the command can
// exit nonzero.
package external
