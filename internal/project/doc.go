// Package project defines the immutable description of one scaffolding run:
// the project name, the language mode and the template kind. It also owns the
// name validation that must pass before anything touches the filesystem.
package project
