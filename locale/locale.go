// Package locale resolves a BCP-47-like locale tag to the tables the
// tokenizer and prebuilt integer parser need: the language family
// (en/es/fr/zh/ja), region, and whether the locale uses a CJK (unspaced)
// script.
package locale

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Family identifies the group of locale-specific tables to use.
// Only the primary subtag and region are consulted, per spec.
type Family string

const (
	FamilyEnglish Family = "en"
	FamilySpanish Family = "es"
	FamilyFrench  Family = "fr"
	FamilyChinese Family = "zh"
	FamilyJapanese Family = "ja"
)

// ErrUnsupportedLocale is the InvalidLocale error: callers that need locale
// tables (e.g. the prebuilt integer parser) wrap it when the tag's primary
// subtag is not one of the supported families.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Tag is a resolved locale: the primary language subtag and the region
// subtag, lowercased, plus the Family bucket used to select tables.
type Tag struct {
	raw    string
	base   string // primary language subtag, lowercased (e.g. "en", "zh")
	region string // region subtag, lowercased (e.g. "us", "cn"), may be empty
	family Family
}

// Parse resolves a BCP-47-like tag string (e.g. "en-US", "zh-CN") into a Tag.
// Unrecognized primary subtags resolve to FamilyEnglish so that the
// tokenizer always has a default table. Base() still reports the original
// primary subtag, so callers that require strict locale tables (prebuilt
// integers) check Base() rather than Family() and return
// ErrUnsupportedLocale themselves when it is unsupported.
func Parse(tag string) Tag {
	base, region := "", ""
	if t, err := language.Parse(tag); err == nil {
		if b, conf := t.Base(); conf > language.No {
			base = strings.ToLower(b.String())
		}
		if r, conf := t.Region(); conf > language.No {
			region = strings.ToLower(r.String())
		}
	}
	if base == "" {
		// language.Parse can reject tags it doesn't recognize (e.g. made up
		// region codes); fall back to a cheap split on '-'/'_'.
		parts := strings.FieldsFunc(tag, func(r rune) bool { return r == '-' || r == '_' })
		if len(parts) > 0 {
			base = strings.ToLower(parts[0])
		}
		if len(parts) > 1 {
			region = strings.ToLower(parts[1])
		}
	}

	return Tag{
		raw:    tag,
		base:   base,
		region: region,
		family: familyForBase(base),
	}
}

func familyForBase(base string) Family {
	switch base {
	case "es":
		return FamilySpanish
	case "fr":
		return FamilyFrench
	case "zh":
		return FamilyChinese
	case "ja":
		return FamilyJapanese
	case "en":
		return FamilyEnglish
	default:
		return FamilyEnglish
	}
}

// String returns the original tag as supplied.
func (t Tag) String() string { return t.raw }

// Base returns the lowercased primary language subtag (e.g. "en").
func (t Tag) Base() string { return t.base }

// Region returns the lowercased region subtag (e.g. "us"), or "" if absent.
func (t Tag) Region() string { return t.region }

// Family returns the locale-table bucket for this tag.
func (t Tag) Family() Family { return t.family }

// IsCJK reports whether this locale uses an unspaced script where the
// tokenizer should split per-codepoint/grapheme instead of on whitespace.
func (t Tag) IsCJK() bool {
	return t.family == FamilyChinese || t.family == FamilyJapanese
}

// IsHongKong reports whether this is the zh-hk regional variant, which uses
// a distinct pattern-neutral symbol set from zh-cn.
func (t Tag) IsHongKong() bool {
	return t.family == FamilyChinese && t.region == "hk"
}
