// Package mdhelpers provides markdown string helpers for template rendering:
// English ordinals, GitHub user links and single-line descriptions.
//
// The package-level functions use the default configuration. Use New with
// options to plug in a different ordinalizer or profile host, and FuncMap
// to register the helpers with text/template.
package mdhelpers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/mdhelpers/pkg/constants"
)

// DescTruncateMax is the description length limit used by TruncateDescription.
// BeautifyDescription does not truncate.
const DescTruncateMax = 80

// ellipsis marks truncated text.
const ellipsis = "..."

// Helpers formats template values. A Helpers is immutable once built and
// safe for concurrent use.
type Helpers struct {
	ordinalizer    Ordinalizer
	profileBaseURL string
	truncateMax    int
}

// defaultHelpers backs the package-level functions.
var defaultHelpers = &Helpers{
	ordinalizer:    FlectOrdinalizer{},
	profileBaseURL: constants.DefaultProfileBaseURL,
	truncateMax:    DescTruncateMax,
}

// Default returns the helpers used by the package-level functions.
func Default() *Helpers {
	return defaultHelpers
}

// New creates Helpers with the given options applied over the defaults.
func New(opts ...Option) (*Helpers, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	return &Helpers{
		ordinalizer:    cfg.ordinalizer,
		profileBaseURL: cfg.profileBaseURL,
		truncateMax:    cfg.truncateMax,
	}, nil
}

// Ordinalize renders n as an English ordinal: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinalize(n int) string {
	return defaultHelpers.Ordinalize(n)
}

// UserLink returns a markdown link to a GitHub profile:
// [@octocat](https://github.com/octocat).
func UserLink(username string) string {
	return defaultHelpers.UserLink(username)
}

// BeautifyDescription flattens text to a single line by replacing every
// newline with ", ".
func BeautifyDescription(text string) string {
	return defaultHelpers.BeautifyDescription(text)
}

// TruncateDescription beautifies text and cuts it to DescTruncateMax runes.
func TruncateDescription(text string) string {
	return defaultHelpers.TruncateDescription(text)
}

// Ordinalize renders n as an English ordinal using the configured ordinalizer.
func (h *Helpers) Ordinalize(n int) string {
	return h.ordinalizer.Ordinal(n)
}

// UserLink returns a markdown link labelled @username pointing at the
// username's profile. The username is not validated or escaped.
func (h *Helpers) UserLink(username string) string {
	return "[@" + username + "](" + h.profileBaseURL + username + ")"
}

// BeautifyDescription replaces each newline independently, so "a\n\nb"
// becomes "a, , b". Text without newlines is returned unchanged.
func (h *Helpers) BeautifyDescription(text string) string {
	return strings.ReplaceAll(text, "\n", ", ")
}

// TruncateDescription beautifies text and truncates it to the configured
// limit, ending with "..." when cut.
func (h *Helpers) TruncateDescription(text string) string {
	return Truncate(h.BeautifyDescription(text), h.truncateMax)
}

// ProfileBaseURL returns the URL prefix user links point to.
func (h *Helpers) ProfileBaseURL() string {
	return h.profileBaseURL
}

// TruncateMax returns the limit used by TruncateDescription.
func (h *Helpers) TruncateMax() int {
	return h.truncateMax
}

// Truncate cuts text to at most limit runes. When text is cut and limit
// leaves room, the last three runes are replaced with "...". A negative
// limit returns "".
func Truncate(text string, limit int) string {
	if limit < 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}
