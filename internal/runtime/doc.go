// Package runtime runs the external tools a project is scaffolded with. The
// Runner interface is the seam between the materializer and real processes;
// ExecRunner implements it with os/exec, and PackageManager builds the create
// and install commands for npm, pnpm, yarn and bun.
package runtime
