//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Alex-mfoniso/vite-forge/internal/materialize"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, so ~/.viteforge stays sandboxed
	WorkDir string // where projects are created
	Logs    *bytes.Buffer
}

// setupTestEnv creates isolated temp directories and skips the test when
// npm is not installed. Projects are created for real, so the registry must
// be reachable.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := exec.LookPath("npm"); err != nil {
		t.Skip("npm not available, skipping")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		Logs:    &bytes.Buffer{},
	}
	t.Setenv("HOME", env.HomeDir)
	// create-vite asks questions unless it believes it is running in CI.
	t.Setenv("CI", "true")
	return env
}

// newMaterializer returns a materializer that runs npm for real with a
// generous per-command timeout.
func newMaterializer(env *testEnv) *materialize.Materializer {
	return &materialize.Materializer{
		Runner: &runtime.ExecRunner{
			Stdout:  env.Logs,
			Stderr:  env.Logs,
			Timeout: 5 * time.Minute,
		},
		PackageManager: runtime.NPM,
		Logger:         slog.New(slog.NewTextHandler(env.Logs, nil)),
		WorkDir:        env.WorkDir,
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	t.Cleanup(cancel)
	return ctx
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

func projectPath(env *testEnv, name string, parts ...string) string {
	return filepath.Join(append([]string{env.WorkDir, name}, parts...)...)
}
