package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers/cmd/mdhelpers/cmd/format"
	"github.com/agentstation/mdhelpers/cmd/mdhelpers/cmd/funcs"
	"github.com/agentstation/mdhelpers/cmd/mdhelpers/cmd/rank"
	"github.com/agentstation/mdhelpers/cmd/mdhelpers/cmd/render"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Formatting commands
	rootCmd.AddCommand(format.NewOrdinalizeCommand(a))
	rootCmd.AddCommand(format.NewUserLinkCommand(a))
	rootCmd.AddCommand(format.NewBeautifyCommand(a))

	// Document commands
	rootCmd.AddCommand(render.NewCommand(a))
	rootCmd.AddCommand(rank.NewCommand(a))
	rootCmd.AddCommand(funcs.NewCommand(a))

	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mdhelpers %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
				fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
