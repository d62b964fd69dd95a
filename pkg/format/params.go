package format

import (
	"strconv"
	"strings"
)

// Params supplies substitution values for placeholder tokens. Resolution is
// total: a placeholder with no matching value renders as its original
// literal text.
//
// Named values cover :name, @name, and $name markers (looked up without the
// prefix). Positional values cover anonymous ? markers in order of
// appearance, and indexed ?N / $N markers (1-based).
type Params struct {
	Named      map[string]string
	Positional []string
}

// resolve returns the substitution text for a placeholder value. index is
// the number of anonymous ? markers already consumed by the current format
// operation; the second return reports whether this call consumed another.
// The cursor lives with the format operation, not with Params, so a Params
// value can be shared across calls.
func (p Params) resolve(value string, index int) (string, bool) {
	switch {
	case value == "?":
		if index < len(p.Positional) {
			return p.Positional[index], true
		}
		return value, true

	case strings.HasPrefix(value, "?"):
		if v, ok := p.positional(value[1:]); ok {
			return v, false
		}

	case strings.HasPrefix(value, "$"):
		if v, ok := p.positional(value[1:]); ok {
			return v, false
		}
		if v, ok := p.Named[value[1:]]; ok {
			return v, false
		}

	case strings.HasPrefix(value, ":") || strings.HasPrefix(value, "@"):
		if v, ok := p.Named[value[1:]]; ok {
			return v, false
		}
	}

	return value, false
}

func (p Params) positional(digits string) (string, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(p.Positional) {
		return "", false
	}
	return p.Positional[n-1], true
}
