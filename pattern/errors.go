package pattern

import "github.com/pkg/errors"

// ErrMalformedPattern is the sentinel wrapped by every pattern compile
// failure (spec.md §7): unbalanced braces/brackets/parens, a '|' outside a
// group, an empty alternative, or an unterminated slot name.
var ErrMalformedPattern = errors.New("malformed pattern")

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedPattern, format, args...)
}
