package numword

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// wordKind classifies one word in a Latin-spaced locale's number grammar.
type wordKind int

const (
	kindUnknown wordKind = iota
	kindUnit             // 0-9 (and teens 10-19, which behave like a single atomic unit)
	kindTens             // 20, 30, ..., 90
	kindHundreds         // 200, 300, ..., 900 (Spanish doscientos..novecientos: a standalone
	// value word, unlike "cien"/"ciento" which multiplies a preceding digit)
	kindMagnitude // hundred, thousand, million, ...
	kindFiller    // "and" - optional, only valid stitching a magnitude's remainder
	kindNegative  // "negative", "minus", ...
)

// classifiedWord is one token's classification result.
type classifiedWord struct {
	kind  wordKind
	value int64
}

// latinTable is a locale's word->value tables for the chunked Latin number
// grammar (spec.md §4.4 en/es/fr rows).
type latinTable struct {
	units      map[string]int64 // 0-19 (includes teens and ordinal/homophone synonyms)
	tens       map[string]int64 // 20-90
	hundreds   map[string]int64 // 200-900 standalone value words (e.g. Spanish doscientos)
	magnitudes map[string]int64 // 100, 1000, 1000000, ...
	filler     map[string]bool  // "and"-equivalents

	// tensUnitRequiresFiller is true for locales (Spanish) where a tens
	// word combines with a following unit only through an explicit filler
	// word ("cuarenta y uno" = 41); English combines them on bare
	// adjacency ("forty one" = 41, no filler needed).
	tensUnitRequiresFiller bool

	negative map[string]bool // "negative"/"minus"-equivalents
}

// foldAccents strips combining diacritical marks so lookups are accent-
// tolerant (spec.md: "accent tolerance" for es/fr), e.g. "dieciseis" with
// or without its accent both fold to the same lookup key.
func foldAccents(s string) string {
	decomposed := norm.NFD.String(s)
	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func (t latinTable) classify(word string) classifiedWord {
	key := foldAccents(word)

	if t.negative[key] {
		return classifiedWord{kind: kindNegative}
	}
	if t.filler[key] {
		return classifiedWord{kind: kindFiller}
	}
	if v, ok := t.units[key]; ok {
		return classifiedWord{kind: kindUnit, value: v}
	}
	if v, ok := t.tens[key]; ok {
		return classifiedWord{kind: kindTens, value: v}
	}
	if v, ok := t.hundreds[key]; ok {
		return classifiedWord{kind: kindHundreds, value: v}
	}
	if v, ok := t.magnitudes[key]; ok {
		return classifiedWord{kind: kindMagnitude, value: v}
	}

	if v, ok := parseOrdinalDigits(word); ok {
		return classifiedWord{kind: kindUnit, value: v}
	}

	return classifiedWord{kind: kindUnknown}
}

// parseOrdinalDigits recognizes a digit run with an English-style ordinal
// suffix ("1st", "22nd", "103rd", "5th") stripped.
func parseOrdinalDigits(word string) (int64, bool) {
	suffixes := []string{"st", "nd", "rd", "th"}
	for _, suf := range suffixes {
		if len(word) > len(suf) && word[len(word)-len(suf):] == suf {
			digits := word[:len(word)-len(suf)]
			if n, ok := parseDecimal(digits); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func parseDecimal(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
