// Package cmd implements the command-line interface for rendezvous.
//
// This package provides the following commands:
//   - availability: List the free slots of a calendar day as JSON
//   - venues: Search and rank meeting venues near a location as JSON
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for the CLI
//
// Results go to stdout; logs and telemetry go to stderr.
package cmd
