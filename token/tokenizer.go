package token

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/speechsdk/intentcore/locale"
)

// caser lower-cases by Unicode simple case folding rules; the same caser is
// used for every locale since the pattern mini-language and all supported
// locales case-fold identically for the ASCII/Latin/CJK ranges this engine
// cares about.
var caser = cases.Lower(language.Und)

// isExtraSpace reports whether r is one of the Unicode space variants the
// spec requires treated as whitespace beyond what unicode.IsSpace already
// covers (both U+00A0 NBSP and U+202F NNBSP are in fact covered by
// unicode.IsSpace, but kept explicit here since the spec calls them out by
// name).
func isExtraSpace(r rune) bool {
	return r == ' ' || r == ' '
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r) || isExtraSpace(r)
}

// Tokenize splits text into a canonical token stream for the given locale.
// The same function tokenizes both pattern literal fragments and utterances,
// so a literal pattern token and an utterance token compare equal whenever
// the underlying words are the same up to case and stripped punctuation.
func Tokenize(text string, loc locale.Tag) []Token {
	text = caser.String(text)

	strip := buildStripSet(loc)
	if loc.IsCJK() {
		return tokenizeCJK(text, strip)
	}
	return tokenizeLatin(text, strip)
}

// stripSet is the set of runes this locale deletes before matching.
type stripSet struct {
	runes map[rune]bool
}

func buildStripSet(loc locale.Tag) stripSet {
	s := stripSet{runes: make(map[rune]bool)}
	for _, r := range loc.InputPunctuation() {
		s.runes[r] = true
	}
	for _, r := range loc.SentenceEndChars() {
		s.runes[r] = true
	}
	for _, r := range loc.PatternNeutralSymbols() {
		s.runes[r] = true
	}
	return s
}

func (s stripSet) strip(r rune) bool { return s.runes[r] }

// tokenizeLatin splits on whitespace, then removes stripped punctuation
// runes from each whitespace-delimited chunk without disturbing the byte
// span of the remaining kept runes.
func tokenizeLatin(text string, strip stripSet) []Token {
	var tokens []Token

	type kept struct {
		r     rune
		start int
		end   int
	}

	var chunk []kept
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		var sb strings.Builder
		for _, k := range chunk {
			sb.WriteRune(k.r)
		}
		txt := sb.String()
		tokens = append(tokens, Token{
			Text:  txt,
			Start: chunk[0].start,
			End:   chunk[len(chunk)-1].end,
			Kind:  classify(txt),
		})
		chunk = chunk[:0]
	}

	for i, r := range text {
		width := len(string(r))
		if isWhitespace(r) {
			flush()
			continue
		}
		if strip.strip(r) {
			// Deleted, but does not break the surrounding word run.
			continue
		}
		chunk = append(chunk, kept{r: r, start: i, end: i + width})
	}
	flush()

	return tokens
}

// tokenizeCJK emits one token per codepoint of CJK (or other non-Latin)
// script, grouping any Latin/digit subsequence into a single token (spec.md
// §4.1: "Latin subsequences group as single tokens"). Grapheme clusters
// (base + combining marks) are treated as a single unit via uniseg so
// decomposed accents don't split across tokens.
func tokenizeCJK(text string, strip stripSet) []Token {
	var tokens []Token

	type run struct {
		sb    strings.Builder
		start int
		end   int
	}
	var latin *run
	flushLatin := func() {
		if latin == nil {
			return
		}
		txt := latin.sb.String()
		if txt != "" {
			tokens = append(tokens, Token{
				Text:  txt,
				Start: latin.start,
				End:   latin.end,
				Kind:  classify(txt),
			})
		}
		latin = nil
	}

	gr := uniseg.NewGraphemes(text)
	pos := 0
	for gr.Next() {
		cluster := gr.Str()
		start := pos
		end := pos + len(cluster)
		pos = end

		r := []rune(cluster)[0]
		if isWhitespace(r) || strip.strip(r) {
			flushLatin()
			continue
		}
		if isLatinOrDigit(r) {
			if latin == nil {
				latin = &run{start: start}
			}
			latin.sb.WriteString(cluster)
			latin.end = end
			continue
		}

		flushLatin()
		tokens = append(tokens, Token{
			Text:  cluster,
			Start: start,
			End:   end,
			Kind:  classify(cluster),
		})
	}
	flushLatin()

	return tokens
}

func isLatinOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		unicode.In(r, unicode.Latin)
}

func classify(text string) Kind {
	allDigit := true
	for _, r := range text {
		if r < '0' || r > '9' {
			allDigit = false
			break
		}
	}
	if allDigit {
		return DigitRun
	}

	allPunct := true
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			allPunct = false
			break
		}
	}
	if allPunct {
		return Punctuation
	}

	return Word
}
