package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/app"
	"github.com/sandeepsanjusplr/buck/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newCellsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "List the project cell and the cells it declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, asJSON := globals(cmd)
			check, _ := cmd.Flags().GetBool("check")

			cells, err := c.app.Cells(cmd.Context(), root, app.CellsOptions{Check: check})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, cells)
			}
			for _, info := range cells {
				printf(w, "%s %s %s\n", style.Dot, cellLabel(info.Name), info.Root)

				details := []string{
					"build file " + info.BuildFileName,
					"syntax " + string(info.DefaultSyntax),
					"globs " + info.GlobHandler,
				}
				if info.Polyglot {
					details = append(details, "polyglot")
				}
				details = append(details, fmt.Sprintf("config %016x", info.Fingerprint))
				printf(w, "  %s\n", style.Muted.Render(strings.Join(details, ", ")))
			}
			if check {
				printf(w, "%s every reachable cell is declared by the root cell\n", style.Success.Render(style.Check))
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Verify that the root cell declares every reachable cell")
	return cmd
}
