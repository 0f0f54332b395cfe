// Package cli defines the Cobra command tree for the viteforge CLI. The root
// command creates a project; each other file registers one subcommand
// (config, templates, doctor, version). Commands delegate to internal
// packages for business logic and only handle flag parsing, I/O formatting,
// and error reporting.
package cli
