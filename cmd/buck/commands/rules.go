package commands

import (
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule types available in a cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, asJSON := globals(cmd)
			cellName, _ := cmd.Flags().GetString("cell")

			rules, err := c.app.Rules(cmd.Context(), root, cellName)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, rules)
			}
			for _, d := range rules {
				attrs := make([]string, 0, len(d.Attributes))
				for _, a := range d.Attributes {
					name := a.Name
					if a.Required {
						name += "*"
					}
					attrs = append(attrs, name)
				}

				line := style.Heading.Render(d.Type.Name)
				if d.Type.Test {
					line += " " + style.Muted.Render("(test)")
				}
				if d.ToolchainPath != "" {
					line += " " + style.Muted.Render(d.ToolchainPath)
				}
				printf(w, "%s\n  %s\n", line, strings.Join(attrs, " "))
			}
			return nil
		},
	}
	cmd.Flags().String("cell", "", "Name of the cell to inspect (default: the project cell)")
	return cmd
}
