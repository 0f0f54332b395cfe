package materialize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alex-mfoniso/vite-forge/internal/catalog"
	"github.com/Alex-mfoniso/vite-forge/internal/manifest"
	"github.com/Alex-mfoniso/vite-forge/internal/project"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
	"github.com/Alex-mfoniso/vite-forge/internal/scaffold"
)

// legacyStylesheet is left behind by create-vite and emptied so it cannot
// fight the Tailwind styles.
const legacyStylesheet = "src/App.css"

// Step names, in execution order.
const (
	StepValidate    = "validate"
	StepScaffold    = "scaffold"
	StepCheck       = "check"
	StepInstall     = "install"
	StepConfigs     = "configs"
	StepDirectories = "directories"
	StepTemplates   = "templates"
	StepManifest    = "manifest"
)

// Result reports what a run produced.
type Result struct {
	Dir       string   // absolute project directory
	Files     []string // written files, relative to Dir
	Installed []string // packages requested from the package manager
	Skipped   []string // packages already declared in package.json
	Warnings  []string
}

// Materializer creates projects under WorkDir.
type Materializer struct {
	Runner         runtime.Runner
	PackageManager runtime.PackageManager
	// Catalog defaults to catalog.Default().
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	WorkDir string
}

// Run materializes spec. Steps run strictly in order and the first failure
// is returned; files written before it are left in place. The spec and every
// template it needs are resolved before any command runs.
func (m *Materializer) Run(ctx context.Context, spec project.Spec) (*Result, error) {
	log := m.logger()

	log.Info("validating project", "step", StepValidate, "name", spec.Name)
	if err := spec.Validate(m.WorkDir); err != nil {
		return nil, err
	}
	cat, err := m.catalog()
	if err != nil {
		return nil, err
	}
	data := catalog.NewTemplateData(spec)
	configs, err := cat.Configs(data)
	if err != nil {
		return nil, err
	}
	sources, err := cat.Sources(data)
	if err != nil {
		return nil, err
	}
	files, err := cat.FilesFor(spec.Kind)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(m.WorkDir, spec.Name)
	res := &Result{Dir: dir}

	log.Info("scaffolding base project", "step", StepScaffold, "template", spec.Language.ViteTemplate())
	create := m.PackageManager.CreateCommand(m.WorkDir, spec.Name, spec.Language.ViteTemplate())
	if _, err := m.Runner.Run(ctx, create); err != nil {
		return nil, fmt.Errorf("scaffolding base project: %w", err)
	}

	log.Debug("checking project directory", "step", StepCheck, "dir", dir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &ScaffoldMissingError{Dir: dir}
	}

	if err := m.install(ctx, cat, dir, res); err != nil {
		return nil, err
	}

	w := scaffold.NewWriter(dir, log)

	log.Info("writing build configs", "step", StepConfigs)
	if err := m.generate(w, dir, configs, spec.Language, res); err != nil {
		return nil, err
	}

	log.Info("creating source directories", "step", StepDirectories)
	for _, d := range cat.Directories() {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	log.Info("writing template files", "step", StepTemplates, "kind", spec.Kind)
	if err := m.generate(w, dir, append(sources, files...), spec.Language, res); err != nil {
		return nil, err
	}
	if err := clearIfExists(w, filepath.Join(dir, filepath.FromSlash(legacyStylesheet))); err != nil {
		return nil, err
	}

	log.Info("patching package.json", "step", StepManifest)
	warnings, err := patchManifest(dir, spec.Name, cat.ManifestPatch())
	if err != nil {
		return nil, err
	}
	res.Warnings = append(res.Warnings, warnings...)

	log.Info("project ready", "dir", dir, "files", len(res.Files))
	return res, nil
}

// install requests the catalog dependencies that package.json does not
// already declare: one command for runtime packages and one for dev packages.
func (m *Materializer) install(ctx context.Context, cat *catalog.Catalog, dir string, res *Result) error {
	log := m.logger()

	pkg, err := manifest.Load(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return fmt.Errorf("reading scaffolded manifest: %w", err)
	}

	var prod, dev []string
	for _, dep := range cat.Dependencies() {
		if pkg.HasDependency(dep.Name) {
			log.Debug("dependency already declared", "step", StepInstall, "package", dep.Name)
			res.Skipped = append(res.Skipped, dep.Name)
			continue
		}
		if dep.Dev {
			dev = append(dev, dep.Name)
		} else {
			prod = append(prod, dep.Name)
		}
	}

	for _, group := range []struct {
		pkgs []string
		dev  bool
	}{{prod, false}, {dev, true}} {
		if len(group.pkgs) == 0 {
			continue
		}
		log.Info("installing dependencies", "step", StepInstall, "dev", group.dev, "packages", group.pkgs)
		cmd := m.PackageManager.InstallCommand(dir, group.pkgs, group.dev)
		if _, err := m.Runner.Run(ctx, cmd); err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
		res.Installed = append(res.Installed, group.pkgs...)
	}
	return nil
}

func (m *Materializer) generate(w *scaffold.Writer, dir string, files []catalog.TemplateFile, lang project.Language, res *Result) error {
	written, err := scaffold.Generate(w, scaffold.Render(dir, files, lang))
	res.Files = append(res.Files, written...)
	return err
}

func (m *Materializer) catalog() (*catalog.Catalog, error) {
	if m.Catalog != nil {
		return m.Catalog, nil
	}
	return catalog.Default()
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

func clearIfExists(w *scaffold.Writer, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return w.WriteFile(path, "")
}

// patchManifest applies the catalog patch to package.json and validates the
// result. Schema violations come back as warnings.
func patchManifest(dir, name string, patch catalog.ManifestPatch) ([]string, error) {
	pkg, err := manifest.Load(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return nil, err
	}
	if err := pkg.Apply(manifest.Patch{
		Name:        name,
		Description: patch.Description,
		Scripts:     patch.Scripts,
	}); err != nil {
		return nil, fmt.Errorf("patching %s: %w", manifest.FileName, err)
	}
	if err := pkg.Save(); err != nil {
		return nil, err
	}

	result, err := manifest.ValidateFile(pkg.Path())
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifest.FileName, err)
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, fmt.Sprintf("%s %s", manifest.FileName, issue))
	}
	return warnings, nil
}
