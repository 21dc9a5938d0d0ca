package numword

import (
	"strconv"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/token"
)

// parseLatin implements the chunked accumulator algorithm outlined in
// spec.md §4.4 for en/es/fr: scan left to right, multiply on a higher
// magnitude, add on a lower magnitude or bare digit group. Sequences of
// number words with no connecting magnitude word ("stacked forms": spoken
// years, spelled-out digit strings) are instead concatenated positionally,
// matching the concrete seed behaviors in the en/es rows of spec.md §4.4.
func parseLatin(tokens []token.Token, family locale.Family) (string, error) {
	table := tableForFamily(family)

	words := make([]classifiedWord, len(tokens))
	for i, t := range tokens {
		if t.Kind == token.DigitRun {
			if n, ok := parseDecimal(t.Text); ok {
				words[i] = classifiedWord{kind: kindUnit, value: n}
				continue
			}
		}
		words[i] = table.classify(t.Text)
		if words[i].kind == kindUnknown {
			return "", ErrNotInteger
		}
	}

	negative := false
	i := 0
	for i < len(words) && words[i].kind == kindNegative {
		negative = true
		i++
	}

	var chunks []chunkResult
	for i < len(words) {
		c, next := parseChunk(words, i, table)
		if next == i {
			// A filler/negative token that can't start a chunk on its own.
			return "", ErrNotInteger
		}
		chunks = append(chunks, c)
		i = next
	}
	if len(chunks) == 0 {
		return "", ErrNotInteger
	}

	total := chunks[0].value
	for k := 1; k < len(chunks); k++ {
		if chunks[k-1].usedMagnitude {
			total += chunks[k].value
		} else {
			total = stack(total, chunks[k].value)
		}
	}

	if negative {
		total = -total
	}
	return strconv.FormatInt(total, 10), nil
}

// stack concatenates the decimal digits of next onto prev (spec.md §4.4
// "stacked forms"), e.g. 19 stacked with 85 gives 1985.
func stack(prev, next int64) int64 {
	width := len(strconv.FormatInt(next, 10))
	scale := int64(1)
	for k := 0; k < width; k++ {
		scale *= 10
	}
	return prev*scale + next
}

// chunkResult is one maximal run of number words combinable under the
// standard tens+unit(+magnitude) grammar.
type chunkResult struct {
	value         int64
	usedMagnitude bool
}

// parseChunk consumes the longest valid number-word run starting at i and
// returns its value plus the index of the first token past that run.
func parseChunk(words []classifiedWord, i int, table latinTable) (chunkResult, int) {
	var local, result int64
	tierFilled := false
	tensOpen := false
	tensLinked := false // filler consumed while tensOpen, enabling a tens+unit merge
	usedMagnitude := false
	start := i

	for i < len(words) {
		w := words[i]
		switch w.kind {
		case kindFiller:
			if usedMagnitude {
				i++
				continue
			}
			if tensOpen {
				tensLinked = true
				i++
				continue
			}
			goto done
		case kindUnit:
			mergeAllowed := tensOpen && (!table.tensUnitRequiresFiller || tensLinked)
			if tierFilled && !mergeAllowed {
				goto done
			}
			local += w.value
			tierFilled = true
			tensOpen = false
			tensLinked = false
			i++
		case kindTens:
			if tierFilled {
				goto done
			}
			local += w.value
			tierFilled = true
			tensOpen = true
			tensLinked = false
			i++
		case kindHundreds:
			if tierFilled {
				goto done
			}
			local += w.value
			// A hundreds word leaves the tens/unit slot open for an optional
			// remainder ("doscientos cincuenta y cinco" = 255), unlike tens
			// or units which fill it outright.
			tierFilled = false
			tensOpen = false
			tensLinked = false
			i++
		case kindMagnitude:
			if w.value >= 1000 {
				sub := local
				if sub == 0 {
					sub = 1
				}
				result += sub * w.value
				local = 0
			} else {
				if local == 0 {
					local = 1
				}
				local *= w.value
			}
			tierFilled = false
			tensOpen = false
			tensLinked = false
			usedMagnitude = true
			i++
		default:
			goto done
		}
	}

done:
	if i == start {
		return chunkResult{}, i
	}
	return chunkResult{value: result + local, usedMagnitude: usedMagnitude}, i
}

func tableForFamily(family locale.Family) latinTable {
	switch family {
	case locale.FamilySpanish:
		return spanishTable
	case locale.FamilyFrench:
		return frenchTable
	default:
		return englishTable
	}
}
