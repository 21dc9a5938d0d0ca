package model

import (
	"gopkg.in/yaml.v3"

	"github.com/pkg/errors"

	"github.com/speechsdk/intentcore/entity"
)

// yamlEntity is the bulk entity-list format: a flat list of List entities,
// same shape as the JSON entities array but YAML-authored for hand-editing
// a large catalog (app/config.go's yaml-authored default config is the
// model for this sibling loader).
type yamlEntity struct {
	Name    string          `yaml:"name"`
	Mode    string          `yaml:"mode"`
	Entries []yamlListEntry `yaml:"entries"`
}

type yamlListEntry struct {
	Entry    string   `yaml:"entry"`
	Synonyms []string `yaml:"synonyms"`
}

// LoadEntityCatalogYAML parses a bulk List-entity document and defines
// every entity it contains on m's catalog, last definition wins per entity
// name (spec.md §4.3). Unlike LoadJSON this format only carries List
// entities: it is meant for large, hand-maintained phrase catalogs (e.g. a
// product list), not the full model document.
func (m *Model) LoadEntityCatalogYAML(data []byte) error {
	var entities []yamlEntity
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return errors.Wrapf(ErrInvalidModel, "yaml.Unmarshal: %s", err)
	}

	for _, ye := range entities {
		mode, err := listModeFromJSON(ye.Mode)
		if err != nil {
			return err
		}
		var listEntries []entity.ListEntry
		for _, e := range ye.Entries {
			listEntries = append(listEntries, entity.ListEntry{Entry: e.Entry, Synonyms: e.Synonyms})
		}
		m.AppendEntity(ye.Name, entity.NewList(mode, listEntries, m.Loc))
	}
	return nil
}
