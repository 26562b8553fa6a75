// Package render implements the render command.
package render

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers/internal/appcontext"
	"github.com/agentstation/mdhelpers/internal/render"
	"github.com/agentstation/mdhelpers/pkg/constants"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// Flags holds the render command flags.
type Flags struct {
	Data string
	Out  string
}

// NewCommand creates the render command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "render <template>",
		GroupID: "documents",
		Short:   "Render a Go template with the markdown helpers",
		Long: `Render executes a text/template file with the helper functions
registered (see "mdhelpers funcs"). Template data is read from a YAML or
JSON file given with --data. Use "-" to read the template or the data
from stdin.

Relative template paths that do not exist are looked up in template_dir.`,
		Args: cobra.ExactArgs(1),
		Example: `  mdhelpers render README.md.tmpl --data contributors.yaml
  mdhelpers render page.tmpl --data - --out docs/page.md < data.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Data, "data", "d", "", "YAML or JSON data file (- for stdin)")
	cmd.Flags().StringVar(&flags.Out, "out", "", "write the result to this file instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, templatePath string, flags *Flags) error {
	if templatePath == constants.StdinPath && flags.Data == constants.StdinPath {
		return errors.NewValidationError("data", flags.Data, "template and data cannot both be read from stdin")
	}

	h, err := app.Helpers()
	if err != nil {
		return err
	}

	job := render.Job{
		TemplatePath: ResolveTemplate(templatePath, app.TemplateDir()),
		DataPath:     flags.Data,
		OutputPath:   flags.Out,
		Stdin:        cmd.InOrStdin(),
	}

	app.Logger().Debug().
		Str("template", job.TemplatePath).
		Str("data", job.DataPath).
		Msg("Rendering template")

	return render.New(h).RenderFile(cmd.Context(), job, cmd.OutOrStdout())
}

// ResolveTemplate returns path unchanged unless it is relative, missing
// and present under dir.
func ResolveTemplate(path, dir string) string {
	if dir == "" || path == constants.StdinPath || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
