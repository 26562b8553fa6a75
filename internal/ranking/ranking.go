// Package ranking builds ranked markdown tables of GitHub users from a
// YAML document, formatting each row with the mdhelpers functions.
package ranking

import (
	"io"
	"sort"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/internal/render"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// DefaultTitle is used when a document has no title.
const DefaultTitle = "Ranking"

// Entry is one ranked user.
type Entry struct {
	User        string `yaml:"user" json:"user"`
	Description string `yaml:"description" json:"description"`
	Score       int    `yaml:"score" json:"score"`
}

// Ranked is an entry with its place assigned.
type Ranked struct {
	Entry
	Place int
}

// Document is the input of a ranking page.
type Document struct {
	Title   string  `yaml:"title" json:"title"`
	Intro   string  `yaml:"intro" json:"intro"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Options controls how rows are formatted.
type Options struct {
	// Truncate shortens descriptions with TruncateDescription.
	Truncate bool
}

// LoadDocument reads a ranking document from path ("-" for stdin).
func LoadDocument(path string, stdin io.Reader) (*Document, error) {
	raw, err := render.ReadInput(path, stdin)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := render.Unmarshal(raw, render.FormatOf(path), path, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every entry names a user.
func (d *Document) Validate() error {
	for i, e := range d.Entries {
		if strings.TrimSpace(e.User) == "" {
			return errors.NewValidationError("entries["+strconv.Itoa(i)+"].user", e.User, "cannot be empty")
		}
	}
	return nil
}

// Rank orders entries by score, highest first, breaking ties by user name.
// Equal scores share a place and the next place skips ahead (1, 2, 2, 4).
func Rank(entries []Entry) []Ranked {
	ranked := make([]Ranked, len(entries))
	for i, e := range entries {
		ranked[i] = Ranked{Entry: e}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].User < ranked[j].User
	})

	for i := range ranked {
		if i > 0 && ranked[i].Score == ranked[i-1].Score {
			ranked[i].Place = ranked[i-1].Place
			continue
		}
		ranked[i].Place = i + 1
	}
	return ranked
}

// Build writes the ranking page for doc to w. A nil helpers uses
// mdhelpers.Default().
func Build(w io.Writer, doc *Document, h *mdhelpers.Helpers, opts Options) error {
	if doc == nil {
		return errors.NewValidationError("document", nil, "cannot be nil")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if h == nil {
		h = mdhelpers.Default()
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = DefaultTitle
	}

	page := md.NewMarkdown(w).H1(cases.Title(language.English, cases.NoLower).String(title))
	if intro := strings.TrimSpace(doc.Intro); intro != "" {
		page.PlainText(intro)
	}

	rows := make([][]string, 0, len(doc.Entries))
	for _, r := range Rank(doc.Entries) {
		desc := h.BeautifyDescription(r.Description)
		if opts.Truncate {
			desc = h.TruncateDescription(r.Description)
		}
		rows = append(rows, []string{
			h.Ordinalize(r.Place),
			escapeCell(h.UserLink(r.User)),
			escapeCell(desc),
			strconv.Itoa(r.Score),
		})
	}

	page.Table(md.TableSet{
		Header: []string{"Place", "User", "Description", "Score"},
		Rows:   rows,
	})

	if err := page.Build(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// escapeCell keeps pipes in cell text from splitting table cells.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
