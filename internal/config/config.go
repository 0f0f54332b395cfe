package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Alex-mfoniso/vite-forge/internal/branding"
	"github.com/Alex-mfoniso/vite-forge/internal/project"
	"github.com/Alex-mfoniso/vite-forge/internal/runtime"
	"github.com/Masterminds/semver/v3"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyTemplate       = "template"
	KeyLanguage       = "language"
	KeyPackageManager = "package_manager"
	KeyTimeout        = "timeout"
	KeyLogLevel       = "log_level"
	KeyNodeConstraint = "node_constraint"
)

var defaults = map[string]string{
	KeyTemplate:       string(project.Basic),
	KeyLanguage:       string(project.TypeScript),
	KeyPackageManager: string(runtime.NPM),
	KeyTimeout:        "0s",
	KeyLogLevel:       "info",
	KeyNodeConstraint: runtime.DefaultNodeConstraint,
}

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Kind           project.Kind
	Language       project.Language
	PackageManager runtime.PackageManager
	Timeout        time.Duration
	LogLevel       string
	NodeConstraint string
}

// Keys returns the known keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Default returns the built-in value of key.
func Default(key string) string {
	return defaults[key]
}

// Dir returns the path to the config directory (~/.viteforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.viteforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every known key with its effective value.
func All() map[string]string {
	out := make(map[string]string, len(defaults))
	for _, k := range Keys() {
		out[k] = viper.GetString(k)
	}
	return out
}

// Set validates and stores a config key-value pair in the config file.
// Only the file's own contents are rewritten; environment overrides and
// defaults are not persisted.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	fileOnly := viper.New()
	fileOnly.SetConfigFile(configFile)
	fileOnly.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := fileOnly.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	fileOnly.Set(key, value)

	if err := fileOnly.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Validate checks that key is known and value is acceptable for it.
func Validate(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return unknownKey(key)
	}

	var err error
	switch key {
	case KeyTemplate:
		_, err = project.ParseKind(value)
	case KeyLanguage:
		_, err = project.ParseLanguage(value)
	case KeyPackageManager:
		_, err = runtime.ParsePackageManager(value)
	case KeyTimeout:
		var d time.Duration
		d, err = time.ParseDuration(value)
		if err == nil && d < 0 {
			err = fmt.Errorf("timeout must not be negative")
		}
	case KeyLogLevel:
		switch value {
		case "debug", "info", "warn", "error":
		default:
			err = fmt.Errorf("unknown log level %q: use debug, info, warn or error", value)
		}
	case KeyNodeConstraint:
		_, err = semver.NewConstraint(value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

// Current parses the effective configuration into Settings.
func Current() (Settings, error) {
	var s Settings
	var err error

	if s.Kind, err = project.ParseKind(Get(KeyTemplate)); err != nil {
		return s, fmt.Errorf("config %s: %w", KeyTemplate, err)
	}
	if s.Language, err = project.ParseLanguage(Get(KeyLanguage)); err != nil {
		return s, fmt.Errorf("config %s: %w", KeyLanguage, err)
	}
	if s.PackageManager, err = runtime.ParsePackageManager(Get(KeyPackageManager)); err != nil {
		return s, fmt.Errorf("config %s: %w", KeyPackageManager, err)
	}
	if s.Timeout, err = time.ParseDuration(Get(KeyTimeout)); err != nil {
		return s, fmt.Errorf("config %s: %w", KeyTimeout, err)
	}
	s.LogLevel = Get(KeyLogLevel)
	s.NodeConstraint = Get(KeyNodeConstraint)
	return s, nil
}

func unknownKey(key string) error {
	msg := fmt.Sprintf("unknown config key %q", key)
	if matches := fuzzy.Find(key, Keys()); len(matches) > 0 {
		sort.Stable(matches)
		msg += fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
	}
	return fmt.Errorf("%s: known keys are %v", msg, Keys())
}
