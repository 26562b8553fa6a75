// Package render executes text/template templates with the mdhelpers
// functions registered, reading template data from YAML or JSON files.
package render

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"text/template"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/pkg/errors"
	"github.com/agentstation/mdhelpers/pkg/logging"
)

// Renderer parses and executes templates with a fixed set of helpers.
type Renderer struct {
	helpers *mdhelpers.Helpers
	funcs   template.FuncMap
}

// Job describes one file render.
type Job struct {
	TemplatePath string
	DataPath     string // optional; "-" reads Stdin
	OutputPath   string // optional; empty writes to the caller's writer
	Stdin        io.Reader
}

// New creates a Renderer. A nil helpers uses mdhelpers.Default().
func New(h *mdhelpers.Helpers) *Renderer {
	if h == nil {
		h = mdhelpers.Default()
	}
	return &Renderer{helpers: h, funcs: h.FuncMap()}
}

// Helpers returns the helpers registered with templates.
func (r *Renderer) Helpers() *mdhelpers.Helpers {
	return r.helpers
}

// Parse parses template text with the helper functions registered.
// Missing map keys fail execution instead of rendering "<no value>".
func (r *Renderer) Parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(r.funcs).
		Parse(text)
	if err != nil {
		return nil, errors.WrapTemplate(name, err)
	}
	return tmpl, nil
}

// Render parses and executes text, writing to w. Nothing is written when
// execution fails.
func (r *Renderer) Render(ctx context.Context, w io.Writer, name, text string, data any) error {
	ctx = logging.WithTemplate(ctx, name)
	logger := logging.FromContext(ctx)

	tmpl, err := r.Parse(name, text)
	if err != nil {
		logger.Debug().Err(err).Msg("Template parse failed")
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.Debug().Err(err).Msg("Template execution failed")
		return errors.WrapTemplate(name, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.WrapIO("write", "", err)
	}
	logger.Debug().Int("bytes", buf.Len()).Msg("Rendered template")
	return nil
}

// RenderString executes text and returns the result.
func (r *Renderer) RenderString(ctx context.Context, name, text string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, name, text, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderFile renders job.TemplatePath with data from job.DataPath. The
// result goes to job.OutputPath, or to out when no output path is set.
func (r *Renderer) RenderFile(ctx context.Context, job Job, out io.Writer) error {
	ctx = logging.WithOperation(ctx, "render")

	text, err := ReadInput(job.TemplatePath, job.Stdin)
	if err != nil {
		return err
	}

	data := map[string]any{}
	if job.DataPath != "" {
		if data, err = LoadData(job.DataPath, job.Stdin); err != nil {
			return err
		}
	}

	name := filepath.Base(job.TemplatePath)
	if job.OutputPath == "" {
		return r.Render(ctx, out, name, string(text), data)
	}

	rendered, err := r.RenderString(ctx, name, string(text), data)
	if err != nil {
		return err
	}
	if err := WriteOutput(job.OutputPath, []byte(rendered)); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().
		Str("template", name).
		Str("output", job.OutputPath).
		Msg("Wrote rendered template")
	return nil
}
