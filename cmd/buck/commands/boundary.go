package commands

import (
	"github.com/sandeepsanjusplr/buck/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newBoundaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boundary <path>",
		Short: "Report whether package boundaries are enforced for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, asJSON := globals(cmd)

			enforced, err := c.app.Boundary(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, struct {
					Path     string `json:"path"`
					Enforced bool   `json:"enforced"`
				}{args[0], enforced})
			}
			if enforced {
				printf(w, "%s %s: package boundaries enforced\n", style.Success.Render(style.Check), args[0])
			} else {
				printf(w, "%s %s: package boundaries not enforced\n", style.Muted.Render(style.Circle), args[0])
			}
			return nil
		},
	}
}
