package mdhelpers

import (
	"math"
	"reflect"

	"github.com/spf13/cast"

	"github.com/agentstation/mdhelpers/pkg/errors"
)

// Template data decoded from YAML or JSON arrives untyped. The *Value
// methods check the argument type and return an InvalidArgumentError
// instead of formatting whatever they were given.

// OrdinalizeValue ordinalizes any Go integer, or a float with no
// fractional part.
func (h *Helpers) OrdinalizeValue(v any) (string, error) {
	n, err := toInt("ordinalize", "number", v)
	if err != nil {
		return "", err
	}
	return h.Ordinalize(n), nil
}

// UserLinkValue builds a user link from a string argument.
func (h *Helpers) UserLinkValue(v any) (string, error) {
	s, err := toString("user_link", "username", v)
	if err != nil {
		return "", err
	}
	return h.UserLink(s), nil
}

// BeautifyDescriptionValue beautifies a string argument.
func (h *Helpers) BeautifyDescriptionValue(v any) (string, error) {
	s, err := toString("beautify_desc", "text", v)
	if err != nil {
		return "", err
	}
	return h.BeautifyDescription(s), nil
}

// TruncateDescriptionValue beautifies and truncates a string argument.
func (h *Helpers) TruncateDescriptionValue(v any) (string, error) {
	s, err := toString("truncate_desc", "text", v)
	if err != nil {
		return "", err
	}
	return h.TruncateDescription(s), nil
}

func toInt(fn, param string, v any) (int, error) {
	invalid := errors.NewInvalidArgumentError(fn, param, v, "integer")

	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		n, err := cast.ToIntE(x)
		if err != nil {
			return 0, invalid
		}
		return n, nil
	case uint:
		return fromUint64(uint64(x), invalid)
	case uint64:
		return fromUint64(x, invalid)
	case float32:
		return fromFloat64(float64(x), invalid)
	case float64:
		return fromFloat64(x, invalid)
	case nil, string, bool:
		return 0, invalid
	}

	// named types such as `type Rank int`
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint64(rv.Uint(), invalid)
	default:
		return 0, invalid
	}
}

func fromUint64(u uint64, invalid error) (int, error) {
	if u > math.MaxInt {
		return 0, invalid
	}
	return int(u), nil
}

func fromFloat64(f float64, invalid error) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalid
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, invalid
	}
	return int(f), nil
}

func toString(fn, param string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	}
	return "", errors.NewInvalidArgumentError(fn, param, v, "string")
}
