// Package model builds and loads the in-memory Model the Recognizer
// matches against (spec.md §4.7): a named collection of intents (each a
// set of compiled patterns) plus the entity catalog those patterns'
// slots resolve against.
package model

import (
	"github.com/pkg/errors"

	"github.com/speechsdk/intentcore/entity"
	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/pattern"
)

// ErrInvalidModel is wrapped into errors raised at model-apply or
// JSON-load time for malformed JSON or entity declarations of unknown
// type (spec.md §7).
var ErrInvalidModel = errors.New("invalid model")

// Model is an immutable, named collection of compiled patterns plus the
// entity catalog they resolve slots against. Once built, a Model is never
// mutated in place; ApplyModels installs a fresh Model wholesale (spec.md
// §3 "immutable once applied").
type Model struct {
	ID       string
	Loc      locale.Tag
	Catalog  *entity.Catalog
	Patterns []*pattern.Pattern // flat, in declaration order across all intents
}

// New creates an empty model for id under loc. Use AppendIntent and
// AppendEntity (or LoadJSON) to populate it.
func New(id string, loc locale.Tag) *Model {
	return &Model{
		ID:      id,
		Loc:     loc,
		Catalog: entity.NewCatalog(),
	}
}

// AppendIntent compiles each pattern phrase and appends it to the model,
// bound to intentID. Patterns are appended in the order given, and model
// declaration order overall is append order across every AppendIntent
// call - the Scorer's final tie-break (spec.md §4.5, §4.6).
func (m *Model) AppendIntent(intentID string, phrases []string) error {
	for _, phraseText := range phrases {
		p, err := pattern.Compile(intentID, phraseText, m.Loc)
		if err != nil {
			return err
		}
		m.Patterns = append(m.Patterns, p)
	}
	return nil
}

// AppendEntity defines (or replaces) the entity named name. Last
// definition wins, per the catalog's own rule (spec.md §4.3).
func (m *Model) AppendEntity(name string, def entity.Def) {
	m.Catalog.Define(name, def)
}
