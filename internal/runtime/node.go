package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultNodeConstraint is the Node.js range create-vite supports.
const DefaultNodeConstraint = ">=18"

// UnsupportedNodeError is returned when the installed Node.js does not
// satisfy the configured constraint.
type UnsupportedNodeError struct {
	Version    string
	Constraint string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("node %s does not satisfy %s", e.Version, e.Constraint)
}

// CheckNode runs `node --version` through runner and checks the result
// against constraint. An empty constraint uses DefaultNodeConstraint. The
// parsed version is returned even when it does not satisfy the constraint.
func CheckNode(ctx context.Context, runner Runner, constraint string) (*semver.Version, error) {
	if constraint == "" {
		constraint = DefaultNodeConstraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing node constraint %q: %w", constraint, err)
	}

	out, err := runner.Run(ctx, Command{Name: "node", Args: []string{"--version"}, Quiet: true})
	if err != nil {
		return nil, fmt.Errorf("checking node version: %w", err)
	}

	v, err := parseSemver(strings.TrimSpace(out.Stdout))
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", strings.TrimSpace(out.Stdout), err)
	}
	if !c.Check(v) {
		return v, &UnsupportedNodeError{Version: v.String(), Constraint: constraint}
	}
	return v, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
