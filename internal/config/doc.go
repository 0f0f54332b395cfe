// Package config manages user-level defaults stored at ~/.viteforge/config.yaml.
// Every key can be overridden with a VITEFORGE_-prefixed environment variable;
// command-line flags override both.
package config
