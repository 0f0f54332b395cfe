package scaffold

import (
	"strings"

	"github.com/Alex-mfoniso/vite-forge/internal/project"
)

// PlaceholderExt is the component extension used throughout the catalog. It is
// reserved: catalog content only ever uses it as a file-extension suffix.
const PlaceholderExt = ".jsx"

// TypeScriptExt replaces PlaceholderExt in TypeScript mode.
const TypeScriptExt = ".tsx"

// Rewrite resolves the placeholder extension in content for lang. JavaScript
// content is returned unchanged; TypeScript content has every placeholder
// replaced, which covers both import paths and the file's own name. The
// result contains no placeholder, so rewriting twice is a no-op.
func Rewrite(content string, lang project.Language) string {
	if !lang.IsTypeScript() {
		return content
	}
	return strings.ReplaceAll(content, PlaceholderExt, TypeScriptExt)
}

// RewritePath applies the Rewrite rule to a relative output path.
func RewritePath(rel string, lang project.Language) string {
	return Rewrite(rel, lang)
}
