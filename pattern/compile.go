package pattern

import (
	"strings"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/token"
)

// Compile parses patternText using the pattern mini-language grammar
// (spec.md §4.2) and returns the ordered atom sequence for intentID.
//
// Compile is idempotent: compiling the same pattern string twice yields
// equivalent atom sequences (spec.md §8).
func Compile(intentID, patternText string, loc locale.Tag) (*Pattern, error) {
	c := &compiler{text: []rune(patternText), loc: loc}

	atoms, err := c.parseSeq(nil)
	if err != nil {
		return nil, err
	}
	if c.pos < len(c.text) {
		// parseSeq only stops early on a rune in stopSet; at top level
		// stopSet is empty, so reaching here means a stray closing
		// delimiter was left unconsumed.
		return nil, malformed("unexpected %q in pattern", c.text[c.pos])
	}

	return &Pattern{IntentID: intentID, Atoms: atoms}, nil
}

type compiler struct {
	text []rune
	pos  int
	loc  locale.Tag
}

// parseSeq parses a run of atoms until it encounters a rune in stopSet (not
// consumed) or the end of input (only valid when stopSet is empty/nil).
func (c *compiler) parseSeq(stopSet map[rune]bool) ([]Atom, error) {
	var atoms []Atom
	var lit []rune

	flushLit := func() {
		if len(lit) == 0 {
			return
		}
		for _, tok := range token.Tokenize(string(lit), c.loc) {
			atoms = append(atoms, Atom{Kind: Literal, Word: tok.Text})
		}
		lit = lit[:0]
	}

	for c.pos < len(c.text) {
		r := c.text[c.pos]

		if stopSet[r] {
			flushLit()
			return coalesceLiterals(atoms), nil
		}

		switch r {
		case '{':
			flushLit()
			c.pos++
			slot, err := c.parseSlot()
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, slot)
		case '[':
			flushLit()
			c.pos++
			alts, err := c.parseAltBody(']')
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, Atom{Kind: Optional, Alternatives: alts})
		case '(':
			flushLit()
			c.pos++
			alts, err := c.parseAltBody(')')
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, Atom{Kind: AltGroup, Alternatives: alts})
		case ']', ')', '}':
			return nil, malformed("unmatched %q in pattern", r)
		case '|':
			return nil, malformed("'|' outside a bracket/paren group")
		default:
			lit = append(lit, r)
			c.pos++
		}
	}

	flushLit()
	return coalesceLiterals(atoms), nil
}

// parseAltBody parses "AltBody := Seq ('|' Seq)*" up to and including
// closeRune (spec.md §4.2 grammar).
func (c *compiler) parseAltBody(closeRune rune) ([][]Atom, error) {
	stopSet := map[rune]bool{'|': true, closeRune: true}

	var alts [][]Atom
	for {
		seq, err := c.parseSeq(stopSet)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, malformed("empty alternative in pattern group")
		}
		alts = append(alts, seq)

		if c.pos >= len(c.text) {
			return nil, malformed("unterminated group, expected %q", closeRune)
		}

		r := c.text[c.pos]
		c.pos++
		if r == closeRune {
			return alts, nil
		}
		// r == '|': continue to the next alternative.
	}
}

// parseSlot parses "Slot := '{' Name (':' InstanceId)? '}'" after the
// opening '{' has already been consumed.
func (c *compiler) parseSlot() (Atom, error) {
	start := c.pos
	for c.pos < len(c.text) && c.text[c.pos] != '}' {
		c.pos++
	}
	if c.pos >= len(c.text) {
		return Atom{}, malformed("unterminated slot name, expected '}'")
	}

	body := string(c.text[start:c.pos])
	c.pos++ // consume '}'

	name, instance := body, ""
	if idx := strings.IndexRune(body, ':'); idx >= 0 {
		name, instance = body[:idx], body[idx+1:]
	}
	name = strings.TrimSpace(name)
	instance = strings.TrimSpace(instance)

	if name == "" {
		return Atom{}, malformed("empty slot name")
	}

	return Atom{Kind: Slot, SlotName: name, InstanceID: instance}, nil
}

// coalesceLiterals merges adjacent Literal atoms that tokenize identically
// into a single atom (spec.md §4.2, §4.5: "Duplicate identical literal
// tokens between consecutive atoms are coalesced during compile").
func coalesceLiterals(atoms []Atom) []Atom {
	if len(atoms) < 2 {
		return atoms
	}
	out := atoms[:1]
	for _, a := range atoms[1:] {
		last := &out[len(out)-1]
		if a.Kind == Literal && last.Kind == Literal && a.Word == last.Word {
			continue
		}
		out = append(out, a)
	}
	return out
}
