package model

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/speechsdk/intentcore/entity"
	"github.com/speechsdk/intentcore/locale"
)

// jsonDoc mirrors the model JSON skeleton in spec.md §6. The intent id
// field accepts either "id" (the §6 skeleton's name) or "intent_id" (the
// §4.7 prose's name); whichever is present wins, "id" taking precedence
// when a document sets both.
type jsonDoc struct {
	Intents  []jsonIntent `json:"intents"`
	Entities []jsonEntity `json:"entities"`
}

type jsonIntent struct {
	Phrases  []string `json:"phrases"`
	ID       string   `json:"id"`
	IntentID string   `json:"intent_id"`
}

func (ji jsonIntent) resolvedID() string {
	if ji.ID != "" {
		return ji.ID
	}
	return ji.IntentID
}

type jsonEntity struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Mode    string          `json:"mode"`
	Phrases []string        `json:"phrases"`
	Entries []jsonListEntry `json:"entries"`
}

type jsonListEntry struct {
	Entry    string   `json:"entry"`
	Synonyms []string `json:"synonyms"`
}

// LoadJSON builds a Model named id from a spec.md §6 model document:
// an entities array (List or PrebuiltInteger declarations) and an intents
// array (each a phrase list bound to an intent id). Covers the "coffee
// maker" scenario: a Turn on / Brew intent pair, a List entity built from
// entries-with-synonyms, and a PrebuiltInteger entity named "number".
func LoadJSON(id string, data []byte, loc locale.Tag) (*Model, error) {
	var doc jsonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidModel, "json.Unmarshal: %s", err)
	}

	m := New(id, loc)

	for _, je := range doc.Entities {
		def, err := entityDefFromJSON(je, loc)
		if err != nil {
			return nil, err
		}
		m.AppendEntity(je.Name, def)
	}

	for _, ji := range doc.Intents {
		intentID := ji.resolvedID()
		if intentID == "" {
			return nil, errors.Wrapf(ErrInvalidModel, "intent missing id/intent_id")
		}
		if err := m.AppendIntent(intentID, ji.Phrases); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// EntitiesFromJSON parses just the entities array of a model JSON document
// into a Catalog, skipping the intents/patterns section entirely. Used to
// rehydrate the catalog a LoadCompiledCache model lost, without paying for
// the pattern compile LoadJSON would otherwise repeat.
func EntitiesFromJSON(data []byte, loc locale.Tag) (*entity.Catalog, error) {
	var doc jsonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidModel, "json.Unmarshal: %s", err)
	}

	cat := entity.NewCatalog()
	for _, je := range doc.Entities {
		def, err := entityDefFromJSON(je, loc)
		if err != nil {
			return nil, err
		}
		cat.Define(je.Name, def)
	}
	return cat, nil
}

func entityDefFromJSON(je jsonEntity, loc locale.Tag) (entity.Def, error) {
	switch strings.ToLower(je.Type) {
	case "list":
		mode, err := listModeFromJSON(je.Mode)
		if err != nil {
			return entity.Def{}, err
		}
		entries := je.Entries
		if len(entries) == 0 {
			for _, p := range je.Phrases {
				entries = append(entries, jsonListEntry{Entry: p})
			}
		}
		var listEntries []entity.ListEntry
		for _, e := range entries {
			listEntries = append(listEntries, entity.ListEntry{Entry: e.Entry, Synonyms: e.Synonyms})
		}
		return entity.NewList(mode, listEntries, loc), nil
	case "prebuiltinteger", "prebuilt_integer":
		return entity.PrebuiltInteger, nil
	case "any", "":
		return entity.Any, nil
	default:
		return entity.Def{}, errors.Wrapf(ErrInvalidModel, "unknown entity type %q for entity %q", je.Type, je.Name)
	}
}

func listModeFromJSON(mode string) (entity.ListMode, error) {
	switch strings.ToLower(mode) {
	case "strict", "":
		return entity.Strict, nil
	case "fuzzy":
		return entity.Fuzzy, nil
	default:
		return 0, errors.Wrapf(ErrInvalidModel, "unknown list mode %q", mode)
	}
}
