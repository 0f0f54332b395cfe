package scaffold

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alex-mfoniso/vite-forge/internal/catalog"
	"github.com/Alex-mfoniso/vite-forge/internal/project"
)

func TestRewrite_JavaScriptIsIdentity(t *testing.T) {
	in := `import App from "./App.jsx";`
	if got := Rewrite(in, project.JavaScript); got != in {
		t.Errorf("Rewrite(js) = %q, want unchanged", got)
	}
}

func TestRewrite_TypeScript(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`import App from "./App.jsx";`, `import App from "./App.tsx";`},
		{"src/pages/Home.jsx", "src/pages/Home.tsx"},
		{"a.jsx b.jsx", "a.tsx b.tsx"},
		{"no placeholder here", "no placeholder here"},
	}
	for _, tt := range tests {
		got := Rewrite(tt.in, project.TypeScript)
		if got != tt.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Rewrite(got, project.TypeScript); again != got {
			t.Errorf("Rewrite is not idempotent: %q -> %q", got, again)
		}
	}
}

// catalogOutputs returns every file the default catalog can produce for lang.
func catalogOutputs(t *testing.T, lang project.Language) []catalog.TemplateFile {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	data := catalog.NewTemplateData(project.Spec{Name: "app1", Language: lang, Kind: project.Basic})
	configs, err := c.Configs(data)
	if err != nil {
		t.Fatal(err)
	}
	sources, err := c.Sources(data)
	if err != nil {
		t.Fatal(err)
	}
	out := append(configs, sources...)
	for _, kind := range project.Kinds() {
		files, err := c.FilesFor(kind)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, files...)
	}
	return out
}

func TestRewrite_CatalogOutputs(t *testing.T) {
	for _, lang := range []project.Language{project.JavaScript, project.TypeScript} {
		files := catalogOutputs(t, lang)
		if len(files) == 0 {
			t.Fatalf("%s: catalog produced no files", lang)
		}
		for _, f := range files {
			for _, s := range []string{f.Path, f.Content} {
				if got := Rewrite(s, project.JavaScript); got != s {
					t.Errorf("%s %s: JavaScript rewrite changed the text", lang, f.Path)
				}
				once := Rewrite(s, project.TypeScript)
				if Rewrite(once, project.TypeScript) != once {
					t.Errorf("%s %s: TypeScript rewrite is not idempotent", lang, f.Path)
				}
				if strings.Contains(once, PlaceholderExt) {
					t.Errorf("%s %s: %s left after TypeScript rewrite", lang, f.Path, PlaceholderExt)
				}
			}
			if got := RewritePath(f.Path, project.JavaScript); got != f.Path {
				t.Errorf("RewritePath(%s, js) = %s", f.Path, got)
			}
		}
	}
}

func TestRewritePath(t *testing.T) {
	if got := RewritePath("src/App.jsx", project.TypeScript); got != "src/App.tsx" {
		t.Errorf("RewritePath(ts) = %q", got)
	}
	if got := RewritePath("src/App.jsx", project.JavaScript); got != "src/App.jsx" {
		t.Errorf("RewritePath(js) = %q", got)
	}
}

func TestRender(t *testing.T) {
	root := t.TempDir()
	files := []catalog.TemplateFile{
		{Path: "src/App.jsx", Content: `import Home from "./pages/Home.jsx";`},
		{Path: "src/index.css", Content: "@import \"tailwindcss\";\n"},
	}

	got := Render(root, files, project.TypeScript)
	if len(got) != 2 {
		t.Fatalf("got %d files, want 2", len(got))
	}
	if want := filepath.Join(root, "src", "App.tsx"); got[0].Path != want {
		t.Errorf("path = %q, want %q", got[0].Path, want)
	}
	if !strings.Contains(got[0].Content, `"./pages/Home.tsx"`) {
		t.Errorf("content not rewritten: %q", got[0].Content)
	}
	if want := filepath.Join(root, "src", "index.css"); got[1].Path != want {
		t.Errorf("path = %q, want %q", got[1].Path, want)
	}
}

func TestWriter_WritesFile(t *testing.T) {
	root := t.TempDir()
	var logs bytes.Buffer
	w := NewWriter(root, newTestLogger(&logs))

	path := filepath.Join(root, "hello.txt")
	if err := w.WriteFile(path, "hello"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q", data)
	}
	if strings.Contains(logs.String(), "overwriting file") {
		t.Errorf("unexpected overwrite log for new file: %s", logs.String())
	}
}

func TestWriter_LogsOverwrite(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "src", "App.css")
	if err := os.WriteFile(path, []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	w := NewWriter(root, newTestLogger(&logs))
	if err := w.WriteFile(path, ""); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("file not replaced, content = %q", data)
	}
	out := logs.String()
	if !strings.Contains(out, "overwriting file") {
		t.Errorf("missing overwrite log: %s", out)
	}
	if !strings.Contains(out, "path=src/App.css") {
		t.Errorf("log should carry the relative path: %s", out)
	}
}

func TestWriter_MissingParent(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	path := filepath.Join(root, "missing", "file.txt")
	err := w.WriteFile(path, "x")
	if err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("error type = %T, want *WriteError", err)
	}
	if werr.Path != path {
		t.Errorf("WriteError.Path = %q, want %q", werr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "missing")); !os.IsNotExist(statErr) {
		t.Error("writer must not create parent directories")
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "pages"), 0755); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(root, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	files := Render(root, []catalog.TemplateFile{
		{Path: "src/App.jsx", Content: "app"},
		{Path: "src/pages/Home.jsx", Content: "home"},
	}, project.JavaScript)

	written, err := Generate(w, files)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []string{"src/App.jsx", "src/pages/Home.jsx"}
	if strings.Join(written, ",") != strings.Join(want, ",") {
		t.Errorf("written = %v, want %v", written, want)
	}
}

func TestGenerate_StopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	files := []RenderedFile{
		{Path: filepath.Join(root, "ok.txt"), Content: "ok"},
		{Path: filepath.Join(root, "nope", "bad.txt"), Content: "bad"},
		{Path: filepath.Join(root, "after.txt"), Content: "after"},
	}

	written, err := Generate(w, files)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(written) != 1 || written[0] != "ok.txt" {
		t.Errorf("written = %v, want [ok.txt]", written)
	}
	if _, statErr := os.Stat(filepath.Join(root, "after.txt")); !os.IsNotExist(statErr) {
		t.Error("files after the failure should not be written")
	}
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
