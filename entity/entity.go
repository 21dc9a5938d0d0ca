// Package entity holds entity definitions (Any, List, PrebuiltInteger) and
// the catalog that resolves a pattern slot's name to one (spec.md §3, §4.3).
package entity

import (
	"strings"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/token"
)

// ListMode controls how a List entity accepts a candidate span.
type ListMode int

const (
	// Strict requires the span's canonical form to equal one of the list's
	// phrases exactly.
	Strict ListMode = iota
	// Fuzzy accepts any non-empty span; the phrase list is advisory only.
	Fuzzy
)

// Kind distinguishes the tagged variants of Def.
type Kind int

const (
	KindAny Kind = iota
	KindList
	KindPrebuiltInteger
)

// Phrase is one pre-tokenized, case-folded entry in a List entity.
// Entry is the canonical value returned when a synonym in the phrase
// matches; it equals the phrase text itself unless the phrase was added as
// a synonym of a different canonical entry (model JSON "synonyms").
type Phrase struct {
	Tokens []token.Token
	Entry  string
}

// Def is an entity definition: the tagged union described in spec.md §3.
type Def struct {
	Kind    Kind
	Mode    ListMode // meaningful only when Kind == KindList
	Phrases []Phrase // meaningful only when Kind == KindList
}

// Any is the default entity definition used for slots whose name was never
// declared in the catalog (spec.md §4.3: "{anything} works without
// explicit declaration").
var Any = Def{Kind: KindAny}

// PrebuiltInteger is the definition for a locale-aware integer slot.
var PrebuiltInteger = Def{Kind: KindPrebuiltInteger}

// NewList builds a List entity definition, pre-tokenizing and case-folding
// every phrase (and its synonyms, flattened to separate Phrase entries
// mapping back to the canonical entry) at catalog build time, per spec.md
// §3 invariants.
func NewList(mode ListMode, entries []ListEntry, loc locale.Tag) Def {
	var phrases []Phrase
	for _, e := range entries {
		canonical := strings.TrimSpace(e.Entry)
		phrases = append(phrases, Phrase{
			Tokens: token.Tokenize(canonical, loc),
			Entry:  canonical,
		})
		for _, syn := range e.Synonyms {
			phrases = append(phrases, Phrase{
				Tokens: token.Tokenize(syn, loc),
				Entry:  canonical,
			})
		}
	}
	return Def{Kind: KindList, Mode: mode, Phrases: phrases}
}

// ListEntry is one canonical entry plus its synonyms, the shape the model
// JSON loader (spec.md §6) and the programmatic builder both produce.
type ListEntry struct {
	Entry    string
	Synonyms []string
}

// Match reports whether span (already tokenized, case-folded) is accepted
// by this List entity, and if so, the canonical entry value to emit.
//
// Strict requires an exact canonical-form match against one of the
// phrases; Fuzzy always accepts (spec.md §4.3).
func (d Def) Match(span []token.Token, spaced bool) (value string, ok bool) {
	if d.Mode == Fuzzy {
		return token.Join(span, spaced), true
	}

	spanForm := token.Join(span, spaced)
	for _, p := range d.Phrases {
		if token.Join(p.Tokens, spaced) == spanForm {
			return p.Entry, true
		}
	}
	return "", false
}

// Catalog maps entity names to definitions (spec.md §4.3).
type Catalog struct {
	defs map[string]Def
}

// NewCatalog returns an empty catalog; undeclared names resolve to Any.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]Def)}
}

// Define registers or replaces the definition for name. Last definition
// wins (spec.md §4.3).
func (c *Catalog) Define(name string, def Def) {
	c.defs[name] = def
}

// Lookup resolves name to its declared definition, or Any if name was
// never defined.
func (c *Catalog) Lookup(name string) Def {
	if d, ok := c.defs[name]; ok {
		return d
	}
	return Any
}

// Specificity ranks entity kinds for score tie-breaking (spec.md §4.5,
// §8): PrebuiltInteger > List-Strict > List-Fuzzy > Any.
func (d Def) Specificity() int {
	switch {
	case d.Kind == KindPrebuiltInteger:
		return 3
	case d.Kind == KindList && d.Mode == Strict:
		return 2
	case d.Kind == KindList && d.Mode == Fuzzy:
		return 1
	default:
		return 0
	}
}
