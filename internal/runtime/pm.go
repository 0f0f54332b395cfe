package runtime

import (
	"fmt"
	"strings"
)

// PackageManager is the JavaScript package manager used to scaffold and
// install.
type PackageManager string

// Supported package managers.
const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// PackageManagers returns the supported package managers, npm first.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, PNPM, Yarn, Bun}
}

// ParsePackageManager validates s, ignoring case. Empty means npm.
func ParsePackageManager(s string) (PackageManager, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NPM, nil
	}
	for _, pm := range PackageManagers() {
		if string(pm) == s {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q: use npm, pnpm, yarn or bun", s)
}

// CreateCommand returns the command that scaffolds a Vite project named
// name in dir using the given create-vite template.
func (pm PackageManager) CreateCommand(dir, name, template string) Command {
	var args []string
	switch pm {
	case PNPM, Yarn, Bun:
		args = []string{"create", "vite", name, "--template", template}
	default:
		args = []string{"create", "vite@latest", name, "--", "--template", template}
	}
	return Command{Name: pm.binary(), Args: args, Dir: dir}
}

// InstallCommand returns the command that adds pkgs to the project in dir,
// as devDependencies when dev is set.
func (pm PackageManager) InstallCommand(dir string, pkgs []string, dev bool) Command {
	var args []string
	switch pm {
	case PNPM, Yarn, Bun:
		args = []string{"add"}
	default:
		args = []string{"install"}
	}
	if dev {
		args = append(args, pm.devFlag())
	}
	args = append(args, pkgs...)
	return Command{Name: pm.binary(), Args: args, Dir: dir}
}

// RunScriptHint returns the command a user types to start the dev server.
func (pm PackageManager) RunScriptHint(script string) string {
	if pm == NPM || pm == "" {
		return "npm run " + script
	}
	return string(pm) + " " + script
}

func (pm PackageManager) binary() string {
	if pm == "" {
		return string(NPM)
	}
	return string(pm)
}

func (pm PackageManager) devFlag() string {
	if pm == Bun {
		return "--dev"
	}
	return "-D"
}
