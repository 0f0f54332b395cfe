// Package ui renders the human-facing terminal output: the creation summary,
// warnings and doctor status lines. Styling adapts to the writer, so output
// to a pipe or file stays plain text.
package ui
