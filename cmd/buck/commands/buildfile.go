package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buildfile <target>",
		Short: "Print the build file that declares a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, asJSON := globals(cmd)

			path, err := c.app.BuildFile(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, map[string]string{"target": args[0], "path": path})
			}
			printf(w, "%s\n", path)
			return nil
		},
	}
}
