package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := copyFixture(t, "valid-package.json")
	pkg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pkg.Path() != path {
		t.Errorf("Path() = %q, want %q", pkg.Path(), path)
	}
	if pkg.Name() != "app1" {
		t.Errorf("Name() = %q, want app1", pkg.Name())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Error("expected error for missing file")
	}

	for _, content := range []string{`[1, 2]`, `{"name": "a"} {}`, `{"name": `} {
		path := filepath.Join(t.TempDir(), FileName)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) expected error", content)
		}
	}
}

func TestHasDependency(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{
  "name": "x",
  "dependencies": {"react": "^19.0.0"},
  "devDependencies": {"vite": "^7.0.0"},
  "peerDependencies": {"tailwindcss": "^4.0.0"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"react", "vite", "tailwindcss"} {
		if !pkg.HasDependency(name) {
			t.Errorf("HasDependency(%q) = false, want true", name)
		}
	}
	if pkg.HasDependency("react-router-dom") {
		t.Error("HasDependency(react-router-dom) = true, want false")
	}
}

func TestApplyAndSave(t *testing.T) {
	path := copyFixture(t, "valid-package.json")
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	err = pkg.Apply(Patch{
		Name:        "my-app",
		Description: "A React app",
		Scripts:     map[string]string{"lint": "eslint . && echo <done>"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := pkg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, `"name": "my-app"`) {
		t.Errorf("name not patched:\n%s", out)
	}
	if !strings.Contains(out, `"lint": "eslint . && echo <done>"`) {
		t.Errorf("lint script missing or escaped:\n%s", out)
	}
	if !strings.Contains(out, `"build": "tsc -b && vite build"`) {
		t.Errorf("existing script lost or escaped:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("output should end with a newline")
	}
	if !strings.Contains(out, "\n  \"private\": true,") {
		t.Errorf("expected two-space indentation:\n%s", out)
	}

	assertOrder(t, out, `"name"`, `"private"`, `"version"`, `"type"`, `"scripts"`, `"dependencies"`, `"devDependencies"`, `"description"`)
	assertOrder(t, out, `"dev"`, `"build"`, `"preview"`, `"lint"`)

	result, err := Validate(data)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Errorf("patched manifest should validate: %+v", result.Issues)
	}
}

func TestApply_CreatesScripts(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"name": "x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := pkg.Apply(Patch{Scripts: map[string]string{"lint": "eslint ."}}); err != nil {
		t.Fatal(err)
	}
	data := pkg.Bytes()
	want := "{\n  \"name\": \"x\",\n  \"scripts\": {\n    \"lint\": \"eslint .\"\n  }\n}\n"
	if string(data) != want {
		t.Errorf("Bytes() =\n%s\nwant\n%s", data, want)
	}
}

func TestApply_EmptyPatchIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"name":"x","version":"1.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := pkg.Apply(Patch{}); err != nil {
		t.Fatal(err)
	}
	data := pkg.Bytes()
	want := "{\n  \"name\": \"x\",\n  \"version\": \"1.0.0\"\n}\n"
	if string(data) != want {
		t.Errorf("Bytes() = %q, want %q", data, want)
	}
}

func TestApply_PreservesUntouchedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"name":"x","files":["dist","src"],"scripts":{"dev":"vite"},"browserslist":{"production":[">0.2%"]}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	err = pkg.Apply(Patch{
		Description: `Say "hi" & <go>`,
		Scripts:     map[string]string{"lint:fix": "eslint . --fix", "test.unit": "vitest"},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := string(pkg.Bytes())

	want := []string{
		"  \"files\": [\n    \"dist\",\n    \"src\"\n  ],",
		`"production": [`,
		`">0.2%"`,
		`"lint:fix": "eslint . --fix"`,
		`"test.unit": "vitest"`,
		`"description": "Say \"hi\" & <go>"`,
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
	assertOrder(t, out, `"name"`, `"files"`, `"scripts"`, `"browserslist"`, `"description"`)
	assertOrder(t, out, `"dev"`, `"lint:fix"`, `"test.unit"`)
	if strings.HasSuffix(out, "\n\n") {
		t.Errorf("output ends with more than one newline:\n%s", out)
	}
}

func TestApply_ScriptsNotAnObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"name": "x", "scripts": "vite"}`), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := pkg.Apply(Patch{Scripts: map[string]string{"dev": "vite"}}); err == nil {
		t.Error("expected error when scripts is not an object")
	}
}

func TestHasDependency_ScopedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"name": "x", "devDependencies": {"@types/react": "^19.0.0"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	pkg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !pkg.HasDependency("@types/react") {
		t.Error("HasDependency(@types/react) = false, want true")
	}
	if pkg.HasDependency("@types/react-dom") {
		t.Error("HasDependency(@types/react-dom) = true, want false")
	}
}

func assertOrder(t *testing.T, s string, keys ...string) {
	t.Helper()
	last := -1
	for _, k := range keys {
		idx := strings.Index(s, k)
		if idx < 0 {
			t.Errorf("missing %s", k)
			return
		}
		if idx < last {
			t.Errorf("%s is out of order", k)
		}
		last = idx
	}
}
