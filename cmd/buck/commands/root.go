// Package commands implements the CLI commands for the buck build front end.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sandeepsanjusplr/buck/internal/app"
	"github.com/sandeepsanjusplr/buck/internal/build"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/ui/output"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for buck.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Cells(ctx context.Context, root string, opts app.CellsOptions) ([]app.CellInfo, error)
	Rules(ctx context.Context, root, cellName string) ([]*domain.RuleDescriptor, error)
	Parse(ctx context.Context, root string, args []string, opts app.ParseOptions) (*app.ParseResult, error)
	BuildFile(ctx context.Context, root, target string) (string, error)
	Boundary(ctx context.Context, root, path string) (bool, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "buck",
		Short:         "Resolve cells and read build files across repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Root directory of the project cell")
	rootCmd.PersistentFlags().Bool("json", false, "Write machine-readable JSON output")
	rootCmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always or never")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		flag, _ := cmd.Flags().GetString("color")
		mode, err := output.ParseMode(flag)
		if err != nil {
			return err
		}
		output.SetMode(mode)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCellsCmd())
	rootCmd.AddCommand(c.newRulesCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newBuildFileCmd())
	rootCmd.AddCommand(c.newBoundaryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// globals reads the persistent flags.
func globals(cmd *cobra.Command) (root string, asJSON bool) {
	root, _ = cmd.Flags().GetString("root")
	asJSON, _ = cmd.Flags().GetBool("json")
	return root, asJSON
}
