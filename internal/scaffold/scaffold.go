package scaffold

import (
	"path/filepath"

	"github.com/Alex-mfoniso/vite-forge/internal/catalog"
	"github.com/Alex-mfoniso/vite-forge/internal/project"
)

// RenderedFile is a template file after extension rewriting, ready to persist.
type RenderedFile struct {
	Path    string // absolute
	Content string
}

// Render rewrites each file's path and content for lang and anchors the path
// under root.
func Render(root string, files []catalog.TemplateFile, lang project.Language) []RenderedFile {
	out := make([]RenderedFile, 0, len(files))
	for _, f := range files {
		rel := RewritePath(f.Path, lang)
		out = append(out, RenderedFile{
			Path:    filepath.Join(root, filepath.FromSlash(rel)),
			Content: Rewrite(f.Content, lang),
		})
	}
	return out
}

// Generate writes rendered files in order and returns the paths written,
// relative to the writer root. It stops at the first failure; files written
// before it stay on disk.
func Generate(w *Writer, files []RenderedFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := w.WriteFile(f.Path, f.Content); err != nil {
			return written, err
		}
		written = append(written, w.display(f.Path))
	}
	return written, nil
}
