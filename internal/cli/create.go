package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Alex-mfoniso/vite-forge/internal/config"
	"github.com/Alex-mfoniso/vite-forge/internal/materialize"
	"github.com/Alex-mfoniso/vite-forge/internal/project"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
	"github.com/Alex-mfoniso/vite-forge/internal/ui"
	"github.com/spf13/cobra"
)

type createOptions struct {
	language languageChoice
	template string
	pm       string
	timeout  time.Duration
}

func (o *createOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Var(&languageSwitch{choice: &o.language, lang: project.TypeScript}, "ts", "Generate a TypeScript project (default)")
	f.Var(&languageSwitch{choice: &o.language, lang: project.JavaScript}, "js", "Generate a JavaScript project")
	f.Lookup("ts").NoOptDefVal = "true"
	f.Lookup("js").NoOptDefVal = "true"
	f.StringVarP(&o.template, "template", "t", "", "Template: basic, dashboard or landing (default from config)")
	f.StringVar(&o.pm, "pm", "", "Package manager: npm, pnpm, yarn or bun (default from config)")
	f.DurationVar(&o.timeout, "timeout", 0, "Limit for each package manager command, e.g. 10m (default from config)")
}

// spec resolves the project spec from flags, falling back to settings.
func (o *createOptions) spec(cmd *cobra.Command, name string, settings config.Settings) (project.Spec, error) {
	spec := project.Spec{Name: name, Language: settings.Language, Kind: settings.Kind}
	if o.language.set {
		spec.Language = o.language.lang
	}
	if cmd.Flags().Changed("template") {
		kind, err := project.ParseKind(o.template)
		if err != nil {
			return spec, err
		}
		spec.Kind = kind
	}
	return spec, nil
}

func (o *createOptions) packageManager(cmd *cobra.Command, settings config.Settings) (runtime.PackageManager, error) {
	if cmd.Flags().Changed("pm") {
		return runtime.ParsePackageManager(o.pm)
	}
	return settings.PackageManager, nil
}

func (o *createOptions) commandTimeout(cmd *cobra.Command, settings config.Settings) time.Duration {
	if cmd.Flags().Changed("timeout") {
		return o.timeout
	}
	return settings.Timeout
}

func runCreate(cmd *cobra.Command, a *app, opts *createOptions, name string) error {
	settings, err := config.Current()
	if err != nil {
		return err
	}
	spec, err := opts.spec(cmd, name, settings)
	if err != nil {
		return err
	}
	pm, err := opts.packageManager(cmd, settings)
	if err != nil {
		return err
	}
	if opts.commandTimeout(cmd, settings) < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	workDir, err := a.getWorkDir()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	if err := spec.Validate(workDir); err != nil {
		return err
	}

	out := ui.New(cmd.OutOrStdout())
	errOut := ui.New(cmd.ErrOrStderr())

	dir := filepath.Join(workDir, spec.Name)
	if _, err := os.Stat(dir); err == nil {
		errOut.Warn("folder %q already exists; existing files may be overwritten", spec.Name)
	}

	runner := a.newRunner(cmd, opts.commandTimeout(cmd, settings))

	if v, err := runtime.CheckNode(cmd.Context(), runner, settings.NodeConstraint); err != nil {
		errOut.Warn("%v", err)
	} else {
		a.logger.Debug("node version ok", "version", v.String())
	}

	out.Title(fmt.Sprintf("Creating %s (%s, %s template)", spec.Name, spec.Language.DisplayName(), spec.Kind))

	m := &materialize.Materializer{
		Runner:         runner,
		PackageManager: pm,
		Logger:         a.logger,
		WorkDir:        workDir,
	}
	res, err := m.Run(cmd.Context(), spec)
	if err != nil {
		return err
	}

	out.Summary(ui.Summary{
		Name:      spec.Name,
		Dir:       res.Dir,
		Language:  spec.Language.DisplayName(),
		Template:  string(spec.Kind),
		Files:     res.Files,
		Installed: res.Installed,
		Skipped:   res.Skipped,
		Warnings:  res.Warnings,
		NextSteps: []string{"cd " + spec.Name, pm.RunScriptHint("dev")},
	})
	return nil
}
