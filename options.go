package mdhelpers

import (
	"net/url"
	"strings"

	"github.com/agentstation/mdhelpers/pkg/constants"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// Option is a function that configures a Helpers instance
type Option func(*config) error

// config holds the settings New builds Helpers from
type config struct {
	ordinalizer    Ordinalizer
	profileBaseURL string
	truncateMax    int
}

func defaultConfig() *config {
	return &config{
		ordinalizer:    FlectOrdinalizer{},
		profileBaseURL: constants.DefaultProfileBaseURL,
		truncateMax:    DescTruncateMax,
	}
}

// WithOrdinalizer replaces the ordinal conversion used by Ordinalize
func WithOrdinalizer(o Ordinalizer) Option {
	return func(c *config) error {
		if o == nil {
			return errors.NewInvalidArgumentError("WithOrdinalizer", "ordinalizer", o, "non-nil Ordinalizer")
		}
		c.ordinalizer = o
		return nil
	}
}

// WithProfileBaseURL points user links at a different profile host.
// The URL must be absolute http(s); a trailing slash is added if missing.
func WithProfileBaseURL(raw string) Option {
	return func(c *config) error {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.NewInvalidArgumentError("WithProfileBaseURL", "url", raw, "absolute http(s) URL")
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		c.profileBaseURL = raw
		return nil
	}
}

// WithTruncateMax sets the rune limit used by TruncateDescription
func WithTruncateMax(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return errors.NewInvalidArgumentError("WithTruncateMax", "max", n, "positive integer")
		}
		c.truncateMax = n
		return nil
	}
}
