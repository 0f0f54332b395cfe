package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file at the root of a generated project.
const FileName = "package.json"

// dependencyFields are the sections searched by HasDependency.
var dependencyFields = []string{"dependencies", "devDependencies", "peerDependencies"}

// formatOptions renders package.json the way npm writes it: two-space
// indentation and every array element on its own line.
var formatOptions = &pretty.Options{Indent: "  "}

// Patch lists the values written into package.json after scaffolding.
// Empty fields are left untouched. Scripts are merged into the existing
// "scripts" object.
type Patch struct {
	Name        string
	Description string
	Scripts     map[string]string
}

// Package is a package.json document loaded for modification. The raw
// document is edited in place so untouched keys keep their order and
// formatting of values.
type Package struct {
	path string
	data []byte
}

// Load reads and parses the package.json at path.
func Load(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", path)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("parsing %s: expected a JSON object", path)
	}
	return &Package{path: path, data: data}, nil
}

// Path returns the file the package was loaded from.
func (p *Package) Path() string { return p.path }

// Name returns the "name" field, or "" when it is absent or not a string.
func (p *Package) Name() string {
	name := gjson.GetBytes(p.data, "name")
	if name.Type != gjson.String {
		return ""
	}
	return name.Str
}

// HasDependency reports whether name is declared in dependencies,
// devDependencies or peerDependencies.
func (p *Package) HasDependency(name string) bool {
	for _, field := range dependencyFields {
		deps := gjson.GetBytes(p.data, field)
		if !deps.IsObject() {
			continue
		}
		if deps.Get(gjson.Escape(name)).Exists() {
			return true
		}
	}
	return false
}

// Apply writes patch into the document in memory. Existing keys keep their
// position; new keys are appended.
func (p *Package) Apply(patch Patch) error {
	if patch.Name != "" {
		if err := p.setString("name", patch.Name); err != nil {
			return err
		}
	}
	if patch.Description != "" {
		if err := p.setString("description", patch.Description); err != nil {
			return err
		}
	}
	if len(patch.Scripts) == 0 {
		return nil
	}

	if scripts := gjson.GetBytes(p.data, "scripts"); scripts.Exists() && !scripts.IsObject() {
		return fmt.Errorf("reading scripts: expected an object, got %s", scripts.Type)
	}
	for _, key := range sortedKeys(patch.Scripts) {
		if err := p.setString("scripts."+gjson.Escape(key), patch.Scripts[key]); err != nil {
			return err
		}
	}
	return nil
}

// setString stores value at path. The value is encoded without escaping
// <, > and &, so scripts such as "a && b" stay readable.
func (p *Package) setString(path, value string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data, err := sjson.SetRawBytes(p.data, path, bytes.TrimRight(buf.Bytes(), "\n"))
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	p.data = data
	return nil
}

// Bytes renders the document with two-space indentation and a trailing
// newline.
func (p *Package) Bytes() []byte {
	return pretty.PrettyOptions(p.data, formatOptions)
}

// Save writes the document back to the path it was loaded from.
func (p *Package) Save() error {
	if err := os.WriteFile(p.path, p.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
