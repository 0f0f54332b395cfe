// Package manifest reads, patches and validates the package.json of a
// generated project. Patching keeps the key order of the existing document,
// and validation checks the result against an embedded JSON Schema.
package manifest
