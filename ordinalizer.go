package mdhelpers

import (
	"strconv"

	"github.com/gobuffalo/flect"
)

// Ordinalizer converts an integer to its ordinal string.
type Ordinalizer interface {
	Ordinal(n int) string
}

// OrdinalizerFunc adapts a function to the Ordinalizer interface.
type OrdinalizerFunc func(n int) string

// Ordinal implements Ordinalizer.
func (f OrdinalizerFunc) Ordinal(n int) string {
	return f(n)
}

// FlectOrdinalizer uses flect's English rules. Negative numbers take the
// suffix of their absolute value, so -1 is "-1st" and -12 is "-12th".
type FlectOrdinalizer struct{}

// Ordinal implements Ordinalizer.
func (FlectOrdinalizer) Ordinal(n int) string {
	return flect.Ordinalize(strconv.Itoa(n))
}
