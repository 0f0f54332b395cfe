package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Language selects TypeScript or JavaScript output. It only changes file
// extensions and import paths, never component logic.
type Language string

// Supported language modes.
const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// ParseLanguage accepts the long and short spellings ("ts", "typescript", "js",
// "javascript"), case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript":
		return TypeScript, nil
	case "js", "javascript":
		return JavaScript, nil
	default:
		return "", fmt.Errorf("unknown language %q: use ts or js", s)
	}
}

// IsTypeScript reports whether l is TypeScript.
func (l Language) IsTypeScript() bool { return l == TypeScript }

// ViteTemplate returns the create-vite template used for the base scaffold.
func (l Language) ViteTemplate() string {
	if l == JavaScript {
		return "react"
	}
	return "react-ts"
}

// DisplayName returns "TypeScript" or "JavaScript".
func (l Language) DisplayName() string {
	if l == JavaScript {
		return "JavaScript"
	}
	return "TypeScript"
}

// Kind is one of the fixed template scaffolds.
type Kind string

// Template kinds.
const (
	Basic     Kind = "basic"
	Dashboard Kind = "dashboard"
	Landing   Kind = "landing"
)

// Kinds returns all template kinds in display order.
func Kinds() []Kind {
	return []Kind{Basic, Dashboard, Landing}
}

// KindNames returns the kind identifiers as strings, in display order.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind validates s against the closed set of kinds, ignoring case and
// surrounding whitespace. Unknown values return an *InvalidTemplateError that
// carries the closest known kind, if any.
func ParseKind(s string) (Kind, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == value {
			return k, nil
		}
	}
	return "", &InvalidTemplateError{Value: s, Suggestion: suggestKind(value)}
}

func suggestKind(value string) string {
	if value == "" {
		return ""
	}
	matches := fuzzy.Find(value, KindNames())
	if len(matches) == 0 {
		return ""
	}
	sort.Stable(matches)
	return matches[0].Str
}

// Spec describes one project to materialize. It is created once from CLI input
// and consumed by a single materializer run.
type Spec struct {
	Name     string
	Language Language
	Kind     Kind
}

// Validate checks the name against workDir and the language and kind against
// their closed sets. The kind must already be canonical; ParseKind is the
// place to normalize user input.
func (s Spec) Validate(workDir string) error {
	if _, err := ValidateName(s.Name, workDir); err != nil {
		return err
	}
	switch s.Language {
	case TypeScript, JavaScript:
	default:
		return fmt.Errorf("unknown language %q", s.Language)
	}
	kind, err := ParseKind(string(s.Kind))
	if err != nil {
		return err
	}
	if kind != s.Kind {
		return &InvalidTemplateError{Value: string(s.Kind), Suggestion: string(kind)}
	}
	return nil
}
