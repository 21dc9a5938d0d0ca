package intent

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/speechsdk/intentcore/match"
	"github.com/speechsdk/intentcore/model"
	"github.com/speechsdk/intentcore/token"
)

// snapshot is the immutable view of every currently-applied model. Stored
// behind an atomic.Value so a concurrent RecognizeOnce always observes
// either the pre- or post-ApplyModels state, never a partially applied one
// (spec.md §5 "Shared state").
type snapshot struct {
	models []*model.Model
}

// Recognizer is the synchronous, stateless-per-call matching core (spec.md
// §5). The zero value is not usable; construct with NewRecognizer.
type Recognizer struct {
	current atomic.Value // holds *snapshot
}

// NewRecognizer returns a Recognizer with no models applied; RecognizeOnce
// against it always returns an empty IntentResult.
func NewRecognizer() *Recognizer {
	r := &Recognizer{}
	r.current.Store(&snapshot{})
	return r
}

// ApplyModels installs models as the entire active set, replacing whatever
// was previously applied (spec.md §3 "reapplying replaces it wholesale (no
// merge)"). The swap is atomic: any in-flight or subsequent RecognizeOnce
// call sees either the old set in full or the new set in full.
func (r *Recognizer) ApplyModels(models []*model.Model) {
	// Copy so the caller mutating their slice afterward can't reach back
	// into the installed snapshot.
	cp := make([]*model.Model, len(models))
	copy(cp, models)
	r.current.Store(&snapshot{models: cp})

	ids := make([]string, len(cp))
	for i, m := range cp {
		ids[i] = m.ID
	}
	log.Printf("applied models: %s\n", strings.Join(ids, ", "))
}

// RecognizeOnce matches text against every pattern of every currently
// applied model and returns the best IntentResult (spec.md §5). It never
// raises an error: a non-match is an IntentResult with an empty IntentID.
func (r *Recognizer) RecognizeOnce(text string) IntentResult {
	snap := r.current.Load().(*snapshot)

	var candidates []candidate
	order := 0
	for _, m := range snap.models {
		tokens := token.Tokenize(text, m.Loc)
		for _, p := range m.Patterns {
			if result, ok := match.Match(p, tokens, m.Loc, m.Catalog); ok {
				candidates = append(candidates, candidate{result: result, order: order, modelID: m.ID})
			}
			order++
		}
	}

	return buildResult(rank(candidates))
}
