// Package match implements the backtracking matcher (spec.md §4.5): given a
// compiled pattern and a tokenized utterance, it decides whether the
// pattern accepts the utterance and, if so, produces a slot assignment plus
// the score components the Scorer ranks on.
package match

import (
	"github.com/speechsdk/intentcore/entity"
	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/numword"
	"github.com/speechsdk/intentcore/pattern"
	"github.com/speechsdk/intentcore/token"
	textutf8 "github.com/speechsdk/intentcore/text/utf8"
)

// Span is a contiguous range [Start, End) of utterance token indices.
type Span struct {
	Start int
	End   int
}

// Slot is one slot's resolved assignment.
type Slot struct {
	Span  Span
	Value string
}

// Result is a successful pattern match plus its score components (spec.md
// §4.5 "Match score components").
type Result struct {
	IntentID          string
	Slots             map[string]Slot
	ExactLiteralCount int
	CoveredBytes      int
	Specificity       int
}

// Match runs pattern p against tokens under loc, consulting catalog for
// slot entity definitions. It reports ok=false if p does not accept the
// full token stream.
//
// A pattern match must consume every utterance token; a trailing unmatched
// token is a non-match, not a partial one (spec.md §4.5, §4.1 "greedy
// entity" policy - the final atom always extends to cover the remainder).
func Match(p *pattern.Pattern, tokens []token.Token, loc locale.Tag, catalog *entity.Catalog) (Result, bool) {
	spaced := !loc.IsCJK()
	ctx := &matchCtx{tokens: tokens, loc: loc, catalog: catalog, spaced: spaced}

	final := func(pos int, tr trace) (bool, trace) {
		if pos == len(tokens) {
			return true, tr
		}
		return false, nil
	}

	ok, tr := matchSeq(ctx, p.Atoms, 0, nil, final)
	if !ok {
		return Result{}, false
	}
	return buildResult(p.IntentID, tr, tokens), true
}

// step is one consumed atom recorded along a successful path: either a
// literal token (slotKey == "") or a resolved slot assignment.
type step struct {
	slotKey string
	span    Span
	value   string
	spec    int
}

// trace is the ordered list of steps along a candidate path. Always copied
// on append (never mutated in place) so that sibling backtracking branches
// never observe each other's speculative state.
type trace []step

func appendStep(tr trace, s step) trace {
	out := make(trace, len(tr)+1)
	copy(out, tr)
	out[len(tr)] = s
	return out
}

func buildResult(intentID string, tr trace, tokens []token.Token) Result {
	r := Result{IntentID: intentID, Slots: make(map[string]Slot)}
	for _, s := range tr {
		if s.slotKey == "" {
			r.ExactLiteralCount++
			for _, t := range tokens[s.span.Start:s.span.End] {
				r.CoveredBytes += t.Len()
			}
			continue
		}
		r.Slots[s.slotKey] = Slot{Span: s.span, Value: s.value}
		r.Specificity += s.spec
	}
	return r
}

type matchCtx struct {
	tokens  []token.Token
	loc     locale.Tag
	catalog *entity.Catalog
	spaced  bool
}

// cont is the continuation invoked after an atom (or sequence) has
// tentatively consumed tokens up to pos; it returns whether the rest of the
// pattern accepted, and if so the completed trace.
type cont func(pos int, tr trace) (bool, trace)

func matchSeq(ctx *matchCtx, atoms []pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	if len(atoms) == 0 {
		return k(pos, tr)
	}
	head, rest := atoms[0], atoms[1:]
	return matchAtom(ctx, head, pos, tr, func(pos2 int, tr2 trace) (bool, trace) {
		return matchSeq(ctx, rest, pos2, tr2, k)
	})
}

func matchAtom(ctx *matchCtx, a pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	switch a.Kind {
	case pattern.Literal:
		return matchLiteral(ctx, a, pos, tr, k)
	case pattern.Slot:
		return matchSlot(ctx, a, pos, tr, k)
	case pattern.Optional:
		return matchOptional(ctx, a, pos, tr, k)
	case pattern.AltGroup:
		return matchAltGroup(ctx, a, pos, tr, k)
	default:
		return false, nil
	}
}

func matchLiteral(ctx *matchCtx, a pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	if pos >= len(ctx.tokens) {
		return false, nil
	}
	t := ctx.tokens[pos]
	if t.Text != a.Word {
		return false, nil
	}
	next := appendStep(tr, step{span: Span{Start: pos, End: pos + 1}})
	return k(pos+1, next)
}

// matchOptional tries the inner alternatives with tokens consumed first,
// falling back to zero tokens consumed only if every alternative fails to
// lead to an overall match (spec.md §4.5).
func matchOptional(ctx *matchCtx, a pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	for _, alt := range a.Alternatives {
		if ok, final := matchSeq(ctx, alt, pos, tr, k); ok {
			return true, final
		}
	}
	return k(pos, tr)
}

// matchAltGroup requires exactly one alternative to match; alternatives are
// tried in declaration order and the first complete one wins.
func matchAltGroup(ctx *matchCtx, a pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	for _, alt := range a.Alternatives {
		if ok, final := matchSeq(ctx, alt, pos, tr, k); ok {
			return true, final
		}
	}
	return false, nil
}

// matchSlot tries increasing span sizes starting at one token, accepting
// the first size whose entity rules are satisfied AND whose continuation
// succeeds. This single loop implements every span-growing policy in
// spec.md §4.5: Any's "minimal span that allows the remainder to match"
// (every span is entity-valid, so the first one whose continuation
// succeeds wins, naturally minimal), two adjacent Any slots leaving the
// left one at size one as long as some right-hand size works, and "greedy
// at end" (when nothing follows, the continuation only accepts pos ==
// len(tokens), so the span grows until it exhausts the utterance).
func matchSlot(ctx *matchCtx, a pattern.Atom, pos int, tr trace, k cont) (bool, trace) {
	def := ctx.catalog.Lookup(a.SlotName)
	maxSize := len(ctx.tokens) - pos
	if maxSize <= 0 {
		return false, nil
	}

	key := a.OutputKey()
	for size := 1; size <= maxSize; size++ {
		span := ctx.tokens[pos : pos+size]
		value, ok := acceptSlot(def, span, ctx.loc, ctx.spaced)
		if !ok {
			continue
		}
		next := appendStep(tr, step{
			slotKey: key,
			span:    Span{Start: pos, End: pos + size},
			value:   value,
			spec:    def.Specificity(),
		})
		if okCont, final := k(pos+size, next); okCont {
			return true, final
		}
	}
	return false, nil
}

// acceptSlot reports whether span satisfies def's entity rules and, if so,
// the value to record for it (spec.md §4.3).
//
// Invalid UTF-8 in the underlying utterance is tolerated inside an Any
// span (the value is whatever the byte sequence decodes to, replacement
// characters included) but rejects a List span outright (spec.md §6).
func acceptSlot(def entity.Def, span []token.Token, loc locale.Tag, spaced bool) (string, bool) {
	switch def.Kind {
	case entity.KindList:
		if !spanIsValidUTF8(span) {
			return "", false
		}
		return def.Match(span, spaced)
	case entity.KindPrebuiltInteger:
		v, err := numword.Parse(span, loc)
		if err != nil {
			return "", false
		}
		return v, true
	default: // entity.KindAny
		return token.Join(span, spaced), true
	}
}

func spanIsValidUTF8(span []token.Token) bool {
	v := textutf8.NewValidator()
	for _, t := range span {
		if !v.ValidateBytes([]byte(t.Text)) {
			return false
		}
	}
	return v.ValidateEnd()
}
