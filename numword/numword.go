// Package numword implements the locale-aware prebuilt integer parser
// (spec.md §4.4): it turns a span of utterance tokens into a canonical
// signed decimal string, or reports that the span is not an integer.
package numword

import (
	"github.com/pkg/errors"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/token"
)

// ErrNotInteger means the span does not parse as an integer in this
// locale; this is a normal match-rejection signal, not an application
// error (spec.md §4.4 "Rejection rule").
var ErrNotInteger = errors.New("span does not parse as an integer")

// Supported reports whether this package has tables for loc's family.
func Supported(family locale.Family) bool {
	switch family {
	case locale.FamilyEnglish, locale.FamilySpanish, locale.FamilyFrench,
		locale.FamilyChinese, locale.FamilyJapanese:
		return true
	default:
		return false
	}
}

// Parse converts a span of tokens into a canonical decimal string.
//
// If loc's primary subtag has no number tables, Parse returns
// locale.ErrUnsupportedLocale wrapped instead of falling back to English
// tables (spec.md §7, §9 "Locale tables"). The check uses loc.Base(), since
// loc.Family() reports English for unrecognized subtags. The matcher treats
// this error like any other Parse failure: the slot span does not match, and
// no error reaches the RecognizeOnce caller.
func Parse(tokens []token.Token, loc locale.Tag) (string, error) {
	if !Supported(locale.Family(loc.Base())) {
		return "", errors.Wrapf(locale.ErrUnsupportedLocale, "no prebuilt integer tables for locale %q", loc.String())
	}

	switch loc.Family() {
	case locale.FamilyChinese, locale.FamilyJapanese:
		return parseCJK(tokens, loc)
	default:
		return parseLatin(tokens, loc.Family())
	}
}
