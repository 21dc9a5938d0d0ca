package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechsdk/intentcore/entity"
	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/match"
	"github.com/speechsdk/intentcore/token"
)

func TestSaveAndLoadCompiledCacheRoundTrips(t *testing.T) {
	loc := locale.Parse("en-us")
	m, err := LoadJSON("coffee-maker", []byte(coffeeMakerJSON), loc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, SaveCompiledCache(path, m))

	cached, err := LoadCompiledCache(path, loc)
	require.NoError(t, err)
	assert.Equal(t, m.ID, cached.ID)
	require.Len(t, cached.Patterns, len(m.Patterns))

	// The catalog doesn't round-trip through the cache; the caller is
	// responsible for re-applying entity definitions (loadModel in
	// cmd/intentcli does this via EntitiesFromJSON).
	assert.Equal(t, entity.Any, cached.Catalog.Lookup("device"))

	cached.Catalog.Define("device", m.Catalog.Lookup("device"))
	tokens := token.Tokenize("turn on brewer", loc)
	result, ok := match.Match(cached.Patterns[1], tokens, loc, cached.Catalog)
	require.True(t, ok)
	assert.Equal(t, "TurnOn", result.IntentID)
	assert.Equal(t, "coffee maker", result.Slots["device"].Value)
}

func TestLoadCompiledCacheRejectsMissingFile(t *testing.T) {
	_, err := LoadCompiledCache(filepath.Join(t.TempDir(), "missing.json"), locale.Parse("en-us"))
	assert.Error(t, err)
}

func TestLoadCompiledCacheRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := LoadCompiledCache(path, locale.Parse("en-us"))
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestEntitiesFromJSONSkipsIntents(t *testing.T) {
	loc := locale.Parse("en-us")
	cat, err := EntitiesFromJSON([]byte(coffeeMakerJSON), loc)
	require.NoError(t, err)
	assert.Equal(t, entity.KindList, cat.Lookup("device").Kind)
	assert.Equal(t, entity.KindPrebuiltInteger, cat.Lookup("size").Kind)
}
