// Package rank implements the rank command.
package rank

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers/internal/appcontext"
	"github.com/agentstation/mdhelpers/internal/ranking"
	"github.com/agentstation/mdhelpers/internal/render"
	"github.com/agentstation/mdhelpers/pkg/errors"
	"github.com/agentstation/mdhelpers/pkg/logging"
)

// NewCommand creates the rank command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		out      string
		truncate bool
	)

	cmd := &cobra.Command{
		Use:     "rank <file>",
		GroupID: "documents",
		Short:   "Build a ranked markdown table of GitHub users",
		Long: `Rank reads a YAML document with a title, an intro and a list of
entries (user, description, score) and prints a markdown page with the
entries ordered by score. Equal scores share a place.`,
		Args: cobra.ExactArgs(1),
		Example: `  mdhelpers rank contributors.yaml
  mdhelpers rank contributors.yaml --truncate --out RANKING.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Helpers()
			if err != nil {
				return err
			}

			ctx := logging.WithFields(cmd.Context(), map[string]any{
				"document": args[0],
				"truncate": truncate,
			})
			logger := logging.FromContext(ctx)

			doc, err := ranking.LoadDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger.Debug().Int("entries", len(doc.Entries)).Msg("Loaded ranking document")

			var buf bytes.Buffer
			if err := ranking.Build(&buf, doc, h, ranking.Options{Truncate: truncate}); err != nil {
				return err
			}

			if out == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return errors.WrapIO("write", "stdout", err)
				}
				return nil
			}

			if err := render.WriteOutput(out, buf.Bytes()); err != nil {
				return err
			}
			logger.Info().
				Int("entries", len(doc.Entries)).
				Str("output", out).
				Msg("Wrote ranking")
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&truncate, "truncate", "t", false, "truncate descriptions to the configured limit")

	return cmd
}
