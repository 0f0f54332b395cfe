package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Alex-mfoniso/vite-forge/internal/catalog"
	"github.com/Alex-mfoniso/vite-forge/internal/ui"
	"github.com/spf13/cobra"
)

type templateInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

func newTemplatesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available project templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}

			var infos []templateInfo
			for _, k := range cat.Kinds() {
				infos = append(infos, templateInfo{
					Name:        string(k.Kind),
					Description: k.Description,
					Files:       k.Paths,
				})
			}

			if asJSON {
				out, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling templates: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			p := ui.New(cmd.OutOrStdout())
			for i, info := range infos {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				p.Title(info.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", info.Description)
				p.Subtle("  " + strings.Join(info.Files, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print templates as JSON")
	return cmd
}
