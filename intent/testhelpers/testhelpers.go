// Package testhelpers provides testify-based assertions over an
// intent.IntentResult, mirroring the five checks the original sample
// suite's test_utils.h exposed against an IntentRecognitionResult
// (RequireIntentId, RequireEntity, RequireNoEntity,
// RequireAlternateIntentId, RequireAlternateCount).
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechsdk/intentcore/intent"
)

// RequireIntentID fails the test unless result.IntentID equals want.
func RequireIntentID(t *testing.T, result intent.IntentResult, want string) {
	t.Helper()
	require.Equal(t, want, result.IntentID)
}

// RequireEntity fails the test unless result.Entities[key] equals want.
func RequireEntity(t *testing.T, result intent.IntentResult, key, want string) {
	t.Helper()
	got, ok := result.Entities[key]
	require.True(t, ok, "expected entity %q in result, entities were %v", key, result.Entities)
	assert.Equal(t, want, got)
}

// RequireNoEntity fails the test if key is present in result.Entities.
func RequireNoEntity(t *testing.T, result intent.IntentResult, key string) {
	t.Helper()
	_, ok := result.Entities[key]
	assert.False(t, ok, "expected no entity %q in result, got %q", key, result.Entities[key])
}

// RequireAlternateIntentID fails the test unless result.Detailed[index]
// has the given intent id.
func RequireAlternateIntentID(t *testing.T, result intent.IntentResult, index int, want string) {
	t.Helper()
	require.Greater(t, len(result.Detailed), index, "alternate index %d out of range", index)
	assert.Equal(t, want, result.Detailed[index].IntentID)
}

// RequireAlternateCount fails the test unless result.Detailed has
// exactly want entries.
func RequireAlternateCount(t *testing.T, result intent.IntentResult, want int) {
	t.Helper()
	assert.Len(t, result.Detailed, want)
}
