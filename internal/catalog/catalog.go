package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"

	"github.com/Alex-mfoniso/vite-forge/internal/project"
	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

const (
	templatesDir = "templates"
	indexFile    = "catalog.yaml"
)

// TemplateFile is one unit of generated output before extension rewriting.
// Path is relative to the project root.
type TemplateFile struct {
	Path    string
	Content string
}

// TemplateData holds the variables available to config and source templates.
type TemplateData struct {
	Name       string // project name
	TypeScript bool
	ConfigExt  string // "ts" or "js", for the Vite config file name
}

// NewTemplateData derives template variables from a project spec.
func NewTemplateData(spec project.Spec) TemplateData {
	d := TemplateData{
		Name:       spec.Name,
		TypeScript: spec.Language.IsTypeScript(),
		ConfigExt:  "js",
	}
	if d.TypeScript {
		d.ConfigExt = "ts"
	}
	return d
}

// Dependency is a package the generated project needs.
type Dependency struct {
	Name string `yaml:"name"`
	Dev  bool   `yaml:"dev"`
}

// ManifestPatch holds the package.json values applied after scaffolding.
type ManifestPatch struct {
	Description string            `yaml:"description"`
	Scripts     map[string]string `yaml:"scripts"`
}

// KindInfo describes one template kind for listings.
type KindInfo struct {
	Kind        project.Kind
	Description string
	Paths       []string
}

type fileEntry struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
}

type kindEntry struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Files       []fileEntry `yaml:"files"`
}

type index struct {
	Configs      []fileEntry   `yaml:"configs"`
	Sources      []fileEntry   `yaml:"sources"`
	Directories  []string      `yaml:"directories"`
	Dependencies []Dependency  `yaml:"dependencies"`
	Manifest     ManifestPatch `yaml:"manifest"`
	Kinds        []kindEntry   `yaml:"kinds"`
}

// Catalog serves template files from an fs.FS rooted above templates/.
type Catalog struct {
	fsys  fs.FS
	index index
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built into the binary, loaded once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(templateFS)
	})
	return defaultCatalog, defaultErr
}

// Load reads templates/catalog.yaml from fsys and checks that every kind is
// known and every referenced source exists.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path.Join(templatesDir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("reading catalog index: %w", err)
	}

	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing catalog index: %w", err)
	}

	c := &Catalog{fsys: fsys, index: idx}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) check() error {
	entries := append([]fileEntry{}, c.index.Configs...)
	entries = append(entries, c.index.Sources...)

	seen := make(map[project.Kind]bool)
	for _, k := range c.index.Kinds {
		kind, err := project.ParseKind(k.Name)
		if err != nil {
			return fmt.Errorf("catalog index: %w", err)
		}
		if seen[kind] {
			return fmt.Errorf("catalog index: kind %q listed twice", kind)
		}
		seen[kind] = true
		entries = append(entries, k.Files...)
	}
	for _, kind := range project.Kinds() {
		if !seen[kind] {
			return fmt.Errorf("catalog index: kind %q has no entry", kind)
		}
	}

	for _, e := range entries {
		if e.Path == "" {
			return fmt.Errorf("catalog index: source %s has no output path", e.Source)
		}
		if _, err := fs.Stat(c.fsys, path.Join(templatesDir, e.Source)); err != nil {
			return fmt.Errorf("catalog index: %w", err)
		}
	}
	return nil
}

// FilesFor returns the ordered component files of kind, with placeholder
// extensions. Content is returned verbatim.
func (c *Catalog) FilesFor(kind project.Kind) ([]TemplateFile, error) {
	for _, k := range c.index.Kinds {
		if k.Name != string(kind) {
			continue
		}
		files := make([]TemplateFile, 0, len(k.Files))
		for _, e := range k.Files {
			content, err := c.read(e.Source)
			if err != nil {
				return nil, err
			}
			files = append(files, TemplateFile{Path: e.Path, Content: content})
		}
		return files, nil
	}
	return nil, &project.InvalidTemplateError{Value: string(kind)}
}

// Configs returns the build-tool configuration files, executed with data.
func (c *Catalog) Configs(data TemplateData) ([]TemplateFile, error) {
	return c.execute(c.index.Configs, data)
}

// Sources returns the shared source files (stylesheet and entry point),
// executed with data. Their paths still carry placeholder extensions.
func (c *Catalog) Sources(data TemplateData) ([]TemplateFile, error) {
	return c.execute(c.index.Sources, data)
}

// Directories returns the source skeleton directories, relative to the project root.
func (c *Catalog) Directories() []string {
	return append([]string(nil), c.index.Directories...)
}

// Dependencies returns the packages every generated project needs.
func (c *Catalog) Dependencies() []Dependency {
	return append([]Dependency(nil), c.index.Dependencies...)
}

// ManifestPatch returns the description and scripts written into package.json.
func (c *Catalog) ManifestPatch() ManifestPatch {
	scripts := make(map[string]string, len(c.index.Manifest.Scripts))
	for k, v := range c.index.Manifest.Scripts {
		scripts[k] = v
	}
	return ManifestPatch{Description: c.index.Manifest.Description, Scripts: scripts}
}

// Kinds lists every template kind in catalog order.
func (c *Catalog) Kinds() []KindInfo {
	infos := make([]KindInfo, 0, len(c.index.Kinds))
	for _, k := range c.index.Kinds {
		info := KindInfo{Kind: project.Kind(k.Name), Description: k.Description}
		for _, f := range k.Files {
			info.Paths = append(info.Paths, f.Path)
		}
		infos = append(infos, info)
	}
	return infos
}

func (c *Catalog) read(source string) (string, error) {
	b, err := fs.ReadFile(c.fsys, path.Join(templatesDir, source))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", source, err)
	}
	return string(b), nil
}

func (c *Catalog) execute(entries []fileEntry, data TemplateData) ([]TemplateFile, error) {
	files := make([]TemplateFile, 0, len(entries))
	for _, e := range entries {
		raw, err := c.read(e.Source)
		if err != nil {
			return nil, err
		}
		outPath, err := render(e.Source+":path", e.Path, data)
		if err != nil {
			return nil, err
		}
		content, err := render(e.Source, raw, data)
		if err != nil {
			return nil, err
		}
		files = append(files, TemplateFile{Path: outPath, Content: content})
	}
	return files, nil
}

func render(name, text string, data TemplateData) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
