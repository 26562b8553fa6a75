// Package funcs implements the funcs command, which lists the template
// functions available to render.
package funcs

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/internal/appcontext"
	"github.com/agentstation/mdhelpers/internal/cmd/output"
)

// NewCommand creates the funcs command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "funcs",
		GroupID: "documents",
		Short:   "List template functions",
		Args:    cobra.NoArgs,
		Example: `  mdhelpers funcs
  mdhelpers funcs -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(output.DetectFormat(string(format)))
			return formatter.Format(cmd.OutOrStdout(), mdhelpers.Funcs())
		},
	}
}
