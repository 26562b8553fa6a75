package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers/internal/cmd/output"
	"github.com/agentstation/mdhelpers/pkg/logging"
)

// Execute runs the mdhelpers CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mdhelpers",
		Short:   "Markdown template helpers",
		Version: a.version,
		Long: `mdhelpers formats values for markdown documents: English ordinals,
GitHub user links and single-line descriptions.

The same helpers are available to Go templates rendered with the render
command, and to ranking tables built with the rank command.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: "format", Title: "Formatting Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "documents", Title: "Document Commands:"})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.mdhelpers.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("mdhelpers {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand runs before every command. It reloads an explicit config
// file, applies the global flags and installs the logger in the context.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
		a.resetHelpers()
	}

	format := mustGetString(cmd, "format")
	if _, err := output.ParseFormat(format); err != nil {
		return err
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		format,
		mustGetString(cmd, "log-level"),
	)

	logger := NewLogger(a.config)
	a.logger = &logger

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// ExitOnError prints err to stderr and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
