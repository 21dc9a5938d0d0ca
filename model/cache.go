package model

import (
	"encoding/json"
	"os"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/pattern"
)

// compiledCache is the on-disk shape of a compiled-pattern cache: just the
// flat pattern list, not the entity catalog. Compiling patterns is the
// expensive part of loading a model (spec.md §2: "~15%" of the core by
// itself); the catalog is cheap to rebuild and the caller re-applies it
// after loading the cache.
type compiledCache struct {
	ModelID  string             `json:"model_id"`
	Patterns []*pattern.Pattern `json:"patterns"`
}

// SaveCompiledCache atomically writes m's compiled pattern list to path,
// so a later LoadCompiledCache can skip re-running the pattern compiler
// over the same phrases. Grounded on file/save.go's
// renameio.NewPendingFile write-then-rename idiom.
func SaveCompiledCache(path string, m *Model) error {
	data, err := json.MarshalIndent(compiledCache{ModelID: m.ID, Patterns: m.Patterns}, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "json.Marshal")
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrapf(err, "renameio.NewPendingFile")
	}
	defer pf.Cleanup()

	if _, err := pf.Write(data); err != nil {
		return errors.Wrapf(err, "renameio write")
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "renameio.CloseAtomicallyReplace")
	}
	return nil
}

// LoadCompiledCache reads back a cache written by SaveCompiledCache. The
// returned Model has an empty entity catalog; the caller must re-apply
// entity definitions (e.g. via AppendEntity or LoadJSON's entities array)
// before matching against slots other than Any.
func LoadCompiledCache(path string, loc locale.Tag) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cache compiledCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, errors.Wrapf(ErrInvalidModel, "json.Unmarshal: %s", err)
	}

	m := New(cache.ModelID, loc)
	m.Patterns = cache.Patterns
	return m, nil
}
