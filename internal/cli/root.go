package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Alex-mfoniso/vite-forge/internal/branding"
	"github.com/Alex-mfoniso/vite-forge/internal/config"
	"github.com/Alex-mfoniso/vite-forge/internal/logging"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
	"github.com/Alex-mfoniso/vite-forge/internal/ui"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command of one invocation.
type app struct {
	version string
	commit  string
	date    string

	logger *slog.Logger
	// workDir overrides the current directory; tests set it.
	workDir string
	// newRunner builds the process runner for a command.
	newRunner func(cmd *cobra.Command, timeout time.Duration) runtime.Runner
}

func newApp(version, commit, date string) *app {
	return &app{
		version:   version,
		commit:    commit,
		date:      date,
		logger:    logging.Discard(),
		newRunner: execRunner,
	}
}

func execRunner(cmd *cobra.Command, timeout time.Duration) runtime.Runner {
	return &runtime.ExecRunner{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Stdin:   cmd.InOrStdin(),
		Timeout: timeout,
	}
}

func (a *app) getWorkDir() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	return os.Getwd()
}

func newRootCmd(a *app) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <project-name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a Vite + React project with Tailwind CSS, React Router and
ESLint already wired, plus a ready-made page layout (basic, dashboard or landing).

To use a subcommand name (config, templates, doctor, version) as the project
name, put it after "--": ` + "`" + branding.CLIName() + ` -- config` + "`" + `.

Report issues at ` + branding.IssuesURL(),
		Example: `  ` + branding.CLIName() + ` my-app
  ` + branding.CLIName() + ` my-app --js --template dashboard
  ` + branding.CLIName() + ` my-site -t landing --pm pnpm`,
		Version:       a.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			level := config.Get(config.KeyLogLevel)
			if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
				level = f.Value.String()
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCreate(cmd, a, opts, args[0])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true

	opts.register(cmd)
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from config)")

	cmd.AddCommand(
		newConfigCmd(),
		newTemplatesCmd(),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// Execute runs the command tree with build info injected via ldflags. Errors
// are reported on stderr before being returned.
func Execute(ctx context.Context, version, commit, date string) error {
	cmd := newRootCmd(newApp(version, commit, date))
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err and, for a failed subprocess, the tail of what it
// wrote to stderr.
func reportError(w io.Writer, err error) {
	p := ui.New(w)
	p.Error(err)

	var perr *runtime.ProcessError
	if errors.As(err, &perr) && perr.Output != nil {
		if tail := lastLines(perr.Output.Stderr, 10); tail != "" {
			p.Subtle(tail)
		}
	}
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
