package commands

import (
	"github.com/sandeepsanjusplr/buck/internal/app"
	"github.com/sandeepsanjusplr/buck/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <target|dir>...",
		Short: "Parse build files and print their rule declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, asJSON := globals(cmd)
			profile, _ := cmd.Flags().GetBool("profile")

			res, err := c.app.Parse(cmd.Context(), root, args, app.ParseOptions{Profile: profile})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, res)
			}
			for _, m := range res.Manifests {
				printf(w, "%s %s\n", style.Heading.Render(displayPath(root, m.Path)), style.Muted.Render(string(m.Syntax)))
				for _, r := range m.Rules {
					printf(w, "  %s %s\n", r.Type, r.Name)
				}
			}
			for _, p := range res.Profiles {
				printf(w, "%s %s %d rules in %s\n", style.Circle, displayPath(root, p.Path), p.Rules, p.Duration)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("profile", "p", false, "Report the time spent on each build file")
	return cmd
}
