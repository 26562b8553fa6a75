package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/pkg/errors"
	"github.com/agentstation/mdhelpers/pkg/logging"
)

const readmeTemplate = `# Contributors
{{ range .contributors }}- {{ ordinalize .place }}: {{ user_link .user }} ({{ beautify_desc .about }})
{{ end }}`

const readmeData = `contributors:
  - place: 1
    user: octocat
    about: |-
      mascot
      tester
  - place: 2
    user: hubot
    about: chat bot
`

const readmeExpected = `# Contributors
- 1st: [@octocat](https://github.com/octocat) (mascot, tester)
- 2nd: [@hubot](https://github.com/hubot) (chat bot)
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderString(t *testing.T) {
	r := New(nil)

	result, err := r.RenderString(context.Background(), "inline", `{{ ordinalize .n }} by {{ user_link .u }}`,
		map[string]any{"n": 13, "u": "octocat"})
	require.NoError(t, err)
	assert.Equal(t, "13th by [@octocat](https://github.com/octocat)", result)
}

func TestRenderErrors(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	t.Run("parse error", func(t *testing.T) {
		_, err := r.RenderString(ctx, "broken", `{{ ordinalize `, nil)
		require.Error(t, err)
		var tmplErr *errors.TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, "broken", tmplErr.Template)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := r.RenderString(ctx, "missing", `{{ .absent }}`, map[string]any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absent")
	})

	t.Run("invalid helper argument", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(ctx, &buf, "bad", `before {{ ordinalize .n }}`, map[string]any{"n": "first"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		assert.Empty(t, buf.String(), "partial output must not be written")
	})
}

func TestRenderUsesHelperOptions(t *testing.T) {
	h, err := mdhelpers.New(mdhelpers.WithProfileBaseURL("https://gitlab.com/"))
	require.NoError(t, err)

	r := New(h)
	assert.Same(t, h, r.Helpers())

	result, err := r.RenderString(context.Background(), "gl", `{{ user_link "gitlab-bot" }}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "[@gitlab-bot](https://gitlab.com/gitlab-bot)", result)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	tmplPath := writeFile(t, dir, "README.md.tmpl", readmeTemplate)
	dataPath := writeFile(t, dir, "data.yaml", readmeData)

	t.Run("to writer", func(t *testing.T) {
		var out bytes.Buffer
		err := New(nil).RenderFile(context.Background(), Job{TemplatePath: tmplPath, DataPath: dataPath}, &out)
		require.NoError(t, err)
		assert.Equal(t, readmeExpected, out.String())
	})

	t.Run("to output file", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)

		outPath := filepath.Join(dir, "docs", "nested", "README.md")
		err := New(nil).RenderFile(ctx, Job{TemplatePath: tmplPath, DataPath: dataPath, OutputPath: outPath}, nil)
		require.NoError(t, err)

		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, readmeExpected, string(content))
		testLogger.AssertContains(t, "Wrote rendered template")
	})

	t.Run("data from stdin", func(t *testing.T) {
		var out bytes.Buffer
		job := Job{
			TemplatePath: tmplPath,
			DataPath:     "-",
			Stdin:        strings.NewReader(`{"contributors": [{"place": 3, "user": "x", "about": "y"}]}`),
		}
		require.NoError(t, New(nil).RenderFile(context.Background(), job, &out))
		assert.Equal(t, "# Contributors\n- 3rd: [@x](https://github.com/x) (y)\n", out.String())
	})

	t.Run("missing template", func(t *testing.T) {
		err := New(nil).RenderFile(context.Background(), Job{TemplatePath: filepath.Join(dir, "nope.tmpl")}, &bytes.Buffer{})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("no data file", func(t *testing.T) {
		plain := writeFile(t, dir, "plain.tmpl", `{{ ordinalize 1 }}`)
		var out bytes.Buffer
		require.NoError(t, New(nil).RenderFile(context.Background(), Job{TemplatePath: plain}, &out))
		assert.Equal(t, "1st", out.String())
	})
}

func TestLoadData(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, dir, "data.json", `{"place": 2, "user": "hubot"}`)
		data, err := LoadData(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "hubot", data["user"])
		assert.NotNil(t, data["place"])
	})

	t.Run("json exponent numbers", func(t *testing.T) {
		path := writeFile(t, dir, "exp.json", `{"n": 1e3, "m": 2.5E1}`)
		data, err := LoadData(path, nil)
		require.NoError(t, err)
		assert.Equal(t, float64(1000), data["n"])
		assert.Equal(t, float64(25), data["m"])

		out, err := New(nil).RenderString(context.Background(), "exp", `{{ ordinalize .n }} {{ ordinalize .m }}`, data)
		require.NoError(t, err)
		assert.Equal(t, "1000th 25th", out)
	})

	t.Run("json on stdin", func(t *testing.T) {
		data, err := LoadData("-", strings.NewReader(`{"n": 2e1}`))
		require.NoError(t, err)
		assert.Equal(t, float64(20), data["n"])
	})

	t.Run("yaml flow mapping on stdin", func(t *testing.T) {
		data, err := LoadData("-", strings.NewReader(`{user: octocat}`))
		require.NoError(t, err)
		assert.Equal(t, "octocat", data["user"])
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json", `{"n": `)
		_, err := LoadData(path, nil)
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "json", parseErr.Format)
	})

	t.Run("empty", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "  \n")
		data, err := LoadData(path, nil)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("parse error", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "- just\n- a list\n")
		_, err := LoadData(path, nil)
		require.Error(t, err)
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "yaml", parseErr.Format)
		assert.Equal(t, path, parseErr.File)
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, "json", FormatOf("data.JSON"))
	assert.Equal(t, "yaml", FormatOf("data.yml"))
	assert.Equal(t, "yaml", FormatOf("data.yaml"))
	assert.Equal(t, "yaml", FormatOf("-"))
}
