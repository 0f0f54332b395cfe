// Package catalog is the fixed set of files a project is materialized from.
// Everything lives in the embedded templates/ directory: catalog.yaml indexes
// the shared build configs and sources, the dependency list, the manifest
// patch and, per template kind, the ordered component files.
//
// Component files use ".jsx" as a placeholder extension throughout; resolving
// it for the selected language is the renderer's job, not the catalog's.
package catalog
