package intent

import (
	"sort"

	"github.com/speechsdk/intentcore/match"
)

// maxAlternates bounds how many ranked candidates Detailed reports. The
// spec only requires "at least 2 alternates when two patterns both match";
// this cap is an implementation choice, not a spec requirement.
const maxAlternates = 5

// candidate is one successful pattern match plus the bookkeeping the
// scorer ranks on: order is this pattern's position in the flattened,
// declaration-ordered pattern list across every applied model (spec.md
// §4.5 score component 4, §4.6 tie-break 4).
type candidate struct {
	result  match.Result
	order   int
	modelID string
}

// rank orders candidates by the spec.md §4.6 selection rule: higher
// exact-literal count, then higher covered bytes, then higher specificity,
// then earlier declaration order. Because a pattern with no slots has
// every one of its tokens counted as an exact literal, a tied exact-match
// vs. slotted-match comparison is already resolved by the first criterion
// alone - "priority to exact match" falls out of this ordering, no
// special case needed.
func rank(candidates []candidate) []candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.result.ExactLiteralCount != b.result.ExactLiteralCount {
			return a.result.ExactLiteralCount > b.result.ExactLiteralCount
		}
		if a.result.CoveredBytes != b.result.CoveredBytes {
			return a.result.CoveredBytes > b.result.CoveredBytes
		}
		if a.result.Specificity != b.result.Specificity {
			return a.result.Specificity > b.result.Specificity
		}
		return a.order < b.order
	})
	return candidates
}

func entitiesOf(r match.Result) map[string]string {
	out := make(map[string]string, len(r.Slots))
	for key, slot := range r.Slots {
		out[key] = slot.Value
	}
	return out
}

// buildResult turns a ranked candidate list into an IntentResult: the
// winner's fields plus a trimmed, ranked Detailed list.
func buildResult(ranked []candidate) IntentResult {
	if len(ranked) == 0 {
		return IntentResult{Entities: map[string]string{}}
	}

	winner := ranked[0]
	out := IntentResult{
		IntentID:       winner.result.IntentID,
		Entities:       entitiesOf(winner.result),
		MatchedModelID: winner.modelID,
	}

	limit := len(ranked)
	if limit > maxAlternates {
		limit = maxAlternates
	}
	for _, c := range ranked[:limit] {
		out.Detailed = append(out.Detailed, Alternate{
			IntentID: c.result.IntentID,
			Entities: entitiesOf(c.result),
		})
	}
	return out
}
