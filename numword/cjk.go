package numword

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/token"
)

// arabicMagnitudeValues holds the decimal values that make an Arabic digit
// group (e.g. "100", "10") act as a magnitude the way 百/十 do, rather than
// as a literal number - this is what lets "100 1 10 1" parse the same way
// "一 百 一 十 一" does (spec.md §4.4 "supports mixed Arabic+Han").
var arabicMagnitudeValues = map[int64]bool{10: true, 100: true, 1000: true, 10000: true, 100000000: true}

// parseCJK implements the Han-numeral accumulator described in spec.md
// §4.4 for zh-cn, zh-hk, and ja-jp: a run of digit words is reduced left to
// right by tracking a single pending digit that gets multiplied into the
// total the moment a magnitude word (十/百/千/万/亿) follows it. ja-jp additionally
// recognizes katakana-spelled digits and magnitudes, matched greedily
// against the longest known reading first.
//
// The matcher's CJK tokenizer splits text one grapheme at a time, which
// would break a multi-rune katakana reading like "ジュウ" across three
// tokens. Rather than re-merge tokens, this rejoins the span's text and
// scans it directly - the token boundaries only matter to the matcher, not
// to this parse. The rejoin reinserts a single space wherever the original
// tokens were non-adjacent in the source utterance (e.g. the word breaks in
// mixed Arabic+Han text like "100 1 10 1"), so the digit-run scan below
// still sees separate Arabic numeral groups as separate groups instead of
// gluing them into one long run of digits.
func parseCJK(tokens []token.Token, loc locale.Tag) (string, error) {
	text := joinPreservingGaps(tokens)
	text = width.Fold(text)
	runes := []rune(text)

	isJapanese := loc.Family() == locale.FamilyJapanese

	var acc, pending int64
	pendingSet := false
	consumed := false

	flush := func() {
		if pendingSet {
			acc += pending
			pending = 0
			pendingSet = false
		}
	}

	i := 0
	for i < len(runes) {
		if isJapanese {
			if n, kw, ok := matchKatakana(runes[i:]); ok {
				if kw.magnitude {
					mul := int64(1)
					if pendingSet {
						mul = pending
						pendingSet = false
					}
					acc += mul * kw.value
				} else {
					flush()
					pending = kw.value
					pendingSet = true
				}
				i += n
				consumed = true
				continue
			}
		}

		r := runes[i]

		if unicode.IsSpace(r) {
			// A gap reinserted by joinPreservingGaps: ends whatever Arabic
			// digit run is in progress without itself being an error.
			i++
			continue
		}

		if r >= '0' && r <= '9' {
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, _ := strconv.ParseInt(string(runes[i:j]), 10, 64)
			switch {
			case arabicMagnitudeValues[n]:
				mul := int64(1)
				if pendingSet {
					mul = pending
					pendingSet = false
				}
				acc += mul * n
			case j-i == 1:
				flush()
				pending = n
				pendingSet = true
			default:
				flush()
				acc += n
			}
			i = j
			consumed = true
			continue
		}

		if d, ok := hanDigits[r]; ok {
			flush()
			pending = d
			pendingSet = true
			i++
			consumed = true
			continue
		}

		if m, ok := hanMagnitudes[r]; ok {
			mul := int64(1)
			if pendingSet {
				mul = pending
				pendingSet = false
			}
			acc += mul * m
			i++
			consumed = true
			continue
		}

		return "", ErrNotInteger
	}

	flush()
	if !consumed {
		return "", ErrNotInteger
	}
	return strconv.FormatInt(acc, 10), nil
}

// joinPreservingGaps reconstructs the scanned text from a token span,
// reinserting a single space wherever the source utterance had a real gap
// between two tokens (token.Join always concatenates with none). Tokens that
// were byte-adjacent in the source - per-character Han/katakana tokens, or
// fullwidth digits tokenized one rune at a time - stay glued together.
func joinPreservingGaps(tokens []token.Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 && t.Start > tokens[i-1].End {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// matchKatakana finds the longest katakana digit/magnitude reading that
// prefixes runes, if any.
func matchKatakana(runes []rune) (n int, kw katakanaWord, ok bool) {
	for _, key := range katakanaByLength {
		kr := []rune(key)
		if len(kr) > len(runes) {
			continue
		}
		match := true
		for k, r := range kr {
			if runes[k] != r {
				match = false
				break
			}
		}
		if match {
			return len(kr), katakanaDigits[key], true
		}
	}
	return 0, katakanaWord{}, false
}
