package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/Alex-mfoniso/vite-forge/internal/config"
	"github.com/Alex-mfoniso/vite-forge/internal/manifest"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
	"github.com/Alex-mfoniso/vite-forge/internal/ui"
	"github.com/spf13/cobra"
)

var errDoctorFailed = errors.New("doctor found problems")

func newDoctorCmd(a *app) *cobra.Command {
	var (
		checkRuntime  bool
		checkManifest string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools a new project needs are installed",
		Long: `Run diagnostic checks on the local environment: Node.js version, package
managers on PATH and the saved configuration. With --check-manifest, validate a
package.json file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.New(cmd.OutOrStdout())
			ok := true

			if !checkRuntime && checkManifest == "" {
				ok = runConfigCheck(cmd, p) && ok
				ok = runRuntimeCheck(cmd, a, p) && ok
			}
			if checkRuntime {
				ok = runRuntimeCheck(cmd, a, p) && ok
			}
			if checkManifest != "" {
				if err := runManifestCheck(cmd, p, checkManifest); err != nil {
					return err
				}
			}

			if !ok {
				return errDoctorFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify Node.js and package managers")
	cmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	return cmd
}

func runConfigCheck(cmd *cobra.Command, p *ui.Printer) bool {
	fmt.Fprintln(cmd.OutOrStdout(), "Config check:")
	if _, err := config.Current(); err != nil {
		p.Check(ui.StatusFail, "%v", err)
		return false
	}
	p.Check(ui.StatusOK, "settings are valid (%s)", config.FilePath())
	return true
}

// runRuntimeCheck reports Node.js against the configured constraint and every
// package manager on PATH. Only a bad Node.js or a missing configured package
// manager counts as a failure.
func runRuntimeCheck(cmd *cobra.Command, a *app, p *ui.Printer) bool {
	fmt.Fprintln(cmd.OutOrStdout(), "Runtime check:")
	ok := true

	constraint := config.Get(config.KeyNodeConstraint)
	runner := a.newRunner(cmd, 0)
	v, err := runtime.CheckNode(cmd.Context(), runner, constraint)
	var unsupported *runtime.UnsupportedNodeError
	switch {
	case err == nil:
		p.Check(ui.StatusOK, "node %s satisfies %s", v, constraintOrDefault(constraint))
	case errors.As(err, &unsupported):
		p.Check(ui.StatusFail, "%v", err)
		ok = false
	default:
		p.Check(ui.StatusMissing, "node: %v", err)
		ok = false
	}

	configured, _ := runtime.ParsePackageManager(config.Get(config.KeyPackageManager))
	for _, pm := range runtime.PackageManagers() {
		path, err := exec.LookPath(string(pm))
		if err != nil {
			p.Check(ui.StatusMissing, "%s not found", pm)
			if pm == configured {
				ok = false
			}
			continue
		}
		p.Check(ui.StatusOK, "%s found at %s", pm, path)
	}
	return ok
}

func constraintOrDefault(c string) string {
	if c == "" {
		return runtime.DefaultNodeConstraint
	}
	return c
}

func runManifestCheck(cmd *cobra.Command, p *ui.Printer, path string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		p.Check(ui.StatusFail, "%v", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		pkg, err := manifest.Load(path)
		if err != nil || pkg.Name() == "" {
			p.Check(ui.StatusOK, "Valid package.json")
			return nil
		}
		p.Check(ui.StatusOK, "Valid package.json: %s", pkg.Name())
		return nil
	}

	p.Check(ui.StatusFail, "%d validation issue(s):", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.OutOrStdout(), "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
