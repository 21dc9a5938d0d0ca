package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechsdk/intentcore/entity"
	"github.com/speechsdk/intentcore/intent"
	"github.com/speechsdk/intentcore/intent/testhelpers"
	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/model"
	"github.com/speechsdk/intentcore/pattern"
)

func newModel(t *testing.T, id string, loc locale.Tag) *model.Model {
	t.Helper()
	return model.New(id, loc)
}

// Seed scenario 1: Pattern `Open {appName}`; utterance `Open microsoft
// word` -> intent_id="open", entities={appName:"microsoft word"}.
func TestSeedOpenAppName(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("open", []string{"Open {appName}"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Open microsoft word")
	testhelpers.RequireIntentID(t, result, "open")
	testhelpers.RequireEntity(t, result, "appName", "microsoft word")
}

// Seed scenario 2: pattern set {Open {appName}, open microsoft word};
// utterance `Open microsoft word` -> intent_id="openWord" (the
// exact-literal pattern wins).
func TestSeedExactLiteralWins(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("open", []string{"Open {appName}"}))
	require.NoError(t, m.AppendIntent("openWord", []string{"open microsoft word"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Open microsoft word")
	testhelpers.RequireIntentID(t, result, "openWord")
}

// Seed scenario 3: Pattern `Turn on the {objectName}.`; utterance `Turn on
// the lamp.` -> intent_id="HomeAutomation.TurnOn",
// entities={objectName:"lamp"}.
func TestSeedTurnOnObject(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("HomeAutomation.TurnOn", []string{"Turn on the {objectName}."}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Turn on the lamp.")
	testhelpers.RequireIntentID(t, result, "HomeAutomation.TurnOn")
	testhelpers.RequireEntity(t, result, "objectName", "lamp")
}

// Seed scenario 4: Pattern `Open {number}` with entity number:
// PrebuiltInteger; utterance `Open One hundred and thirty eight.` (en) ->
// entities={number:"138"}.
func TestSeedPrebuiltIntegerSlot(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	m.AppendEntity("number", entity.PrebuiltInteger)
	require.NoError(t, m.AppendIntent("open", []string{"Open {number}"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Open One hundred and thirty eight.")
	testhelpers.RequireEntity(t, result, "number", "138")
}

// Seed scenario 5: Pattern `Click {number}`; utterance `Click two zero
// three` (en) with a list entity {list: Strict, [two zero three, close]}
// present on another pattern -> entities={number:"203"} (integer beats
// list).
func TestSeedIntegerBeatsList(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	m.AppendEntity("number", entity.PrebuiltInteger)
	m.AppendEntity("list", entity.NewList(entity.Strict, []entity.ListEntry{
		{Entry: "two zero three"},
		{Entry: "close"},
	}, loc))
	require.NoError(t, m.AppendIntent("clickNumber", []string{"Click {number}"}))
	require.NoError(t, m.AppendIntent("clickList", []string{"Click {list}"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Click two zero three")
	testhelpers.RequireIntentID(t, result, "clickNumber")
	testhelpers.RequireEntity(t, result, "number", "203")
}

// Seed scenario 6: Pattern `[Computer] listen up` (intent KeywordTest);
// utterances `Computer listen up` and `listen up` both produce
// intent_id="KeywordTest".
func TestSeedOptionalKeyword(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("KeywordTest", []string{"[Computer] listen up"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	testhelpers.RequireIntentID(t, r.RecognizeOnce("Computer listen up"), "KeywordTest")
	testhelpers.RequireIntentID(t, r.RecognizeOnce("listen up"), "KeywordTest")
}

// Seed scenario 7: Pattern `(Open|Start) {appName}` (intent open);
// utterances `Open Microsoft Word.` and `Start Microsoft Word.` both
// produce appName="microsoft word".
func TestSeedAltGroup(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("open", []string{"(Open|Start) {appName}"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	testhelpers.RequireEntity(t, r.RecognizeOnce("Open Microsoft Word."), "appName", "microsoft word")
	testhelpers.RequireEntity(t, r.RecognizeOnce("Start Microsoft Word."), "appName", "microsoft word")
}

// Seed scenario 8: malformed pattern `Open {appName` raises
// MalformedPattern at compile time.
func TestSeedMalformedPattern(t *testing.T) {
	_, err := pattern.Compile("open", "Open {appName", locale.Parse("en-us"))
	assert.ErrorIs(t, err, pattern.ErrMalformedPattern)
}

func TestRecognizeOnceNoMatchIsEmptyNotError(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("open", []string{"open {appName}"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("completely unrelated utterance")
	assert.Empty(t, result.IntentID)
	assert.Empty(t, result.Entities)
}

func TestApplyModelsReplacesWholesale(t *testing.T) {
	loc := locale.Parse("en-us")
	first := newModel(t, "first", loc)
	require.NoError(t, first.AppendIntent("a", []string{"hello"}))
	second := newModel(t, "second", loc)
	require.NoError(t, second.AppendIntent("b", []string{"goodbye"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{first})
	testhelpers.RequireIntentID(t, r.RecognizeOnce("hello"), "a")

	r.ApplyModels([]*model.Model{second})
	result := r.RecognizeOnce("hello")
	assert.Empty(t, result.IntentID, "first model's intents must not survive a replacing ApplyModels")
	testhelpers.RequireIntentID(t, r.RecognizeOnce("goodbye"), "b")
}

func TestMatchedModelIDDistinguishesAppliedModels(t *testing.T) {
	loc := locale.Parse("en-us")
	a := newModel(t, "model-a", loc)
	require.NoError(t, a.AppendIntent("greet", []string{"hello"}))
	b := newModel(t, "model-b", loc)
	require.NoError(t, b.AppendIntent("farewell", []string{"goodbye"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{a, b})

	result := r.RecognizeOnce("goodbye")
	testhelpers.RequireIntentID(t, result, "farewell")
	assert.Equal(t, "model-b", result.MatchedModelID)
}

func TestAlternatesIncludeBothMatchingPatterns(t *testing.T) {
	loc := locale.Parse("en-us")
	m := newModel(t, "m", loc)
	require.NoError(t, m.AppendIntent("open", []string{"Open {appName}"}))
	require.NoError(t, m.AppendIntent("openWord", []string{"open microsoft word"}))

	r := intent.NewRecognizer()
	r.ApplyModels([]*model.Model{m})

	result := r.RecognizeOnce("Open microsoft word")
	assert.GreaterOrEqual(t, len(result.Detailed), 2)
}
