package cli

import (
	"fmt"

	"github.com/Alex-mfoniso/vite-forge/internal/branding"
	"github.com/Alex-mfoniso/vite-forge/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage default settings",
		Long: fmt.Sprintf(`Read and write %s defaults stored at ~/%s/config.yaml.

Every key can also be set with an environment variable, e.g. %s.
Command-line flags override both.`, branding.DisplayName(), branding.HomeDir(), branding.EnvVar(config.KeyTemplate)),
		Args: cobra.NoArgs,
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd(), newConfigListCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if config.Default(key) == "" {
				// Validate reports the unknown key with a suggestion.
				return config.Validate(key, "")
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := config.All()
			for _, key := range config.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, all[key])
			}
			return nil
		},
	}
}
