package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechsdk/intentcore/locale"
	"github.com/speechsdk/intentcore/pattern"
)

var enUS = locale.Parse("en-us")

func TestCompileLiteralSequence(t *testing.T) {
	p, err := pattern.Compile("TurnOn", "turn on the light", enUS)
	require.NoError(t, err)
	require.Len(t, p.Atoms, 4)
	for i, word := range []string{"turn", "on", "the", "light"} {
		assert.Equal(t, pattern.Literal, p.Atoms[i].Kind)
		assert.Equal(t, word, p.Atoms[i].Word)
	}
	assert.False(t, p.HasSlots())
}

func TestCompileSlotWithAndWithoutInstance(t *testing.T) {
	p, err := pattern.Compile("TurnOn", "turn on {device}", enUS)
	require.NoError(t, err)
	require.Len(t, p.Atoms, 3)
	slot := p.Atoms[2]
	assert.Equal(t, pattern.Slot, slot.Kind)
	assert.Equal(t, "device", slot.SlotName)
	assert.Equal(t, "", slot.InstanceID)
	assert.Equal(t, "device", slot.OutputKey())
	assert.True(t, p.HasSlots())

	p, err = pattern.Compile("Move", "move {device:1} to {device:2}", enUS)
	require.NoError(t, err)
	var first, second pattern.Atom
	for _, a := range p.Atoms {
		if a.Kind != pattern.Slot {
			continue
		}
		if a.InstanceID == "1" {
			first = a
		} else {
			second = a
		}
	}
	assert.Equal(t, "device:1", first.OutputKey())
	assert.Equal(t, "device:2", second.OutputKey())
}

func TestCompileOptionalGroup(t *testing.T) {
	p, err := pattern.Compile("TurnOn", "turn on the light[s]", enUS)
	require.NoError(t, err)
	last := p.Atoms[len(p.Atoms)-1]
	require.Equal(t, pattern.Optional, last.Kind)
	require.Len(t, last.Alternatives, 1)
	require.Len(t, last.Alternatives[0], 1)
	assert.Equal(t, "s", last.Alternatives[0][0].Word)
	assert.False(t, p.HasSlots())
}

func TestCompileAltGroupWithMultipleBranches(t *testing.T) {
	p, err := pattern.Compile("Power", "turn (on|off) the light", enUS)
	require.NoError(t, err)
	var alt pattern.Atom
	for _, a := range p.Atoms {
		if a.Kind == pattern.AltGroup {
			alt = a
		}
	}
	require.Len(t, alt.Alternatives, 2)
	assert.Equal(t, "on", alt.Alternatives[0][0].Word)
	assert.Equal(t, "off", alt.Alternatives[1][0].Word)
}

func TestCompileSlotInsideOptionalCountsAsHasSlots(t *testing.T) {
	p, err := pattern.Compile("TurnOn", "turn on the light[{device}]", enUS)
	require.NoError(t, err)
	assert.True(t, p.HasSlots())
}

func TestCompileCoalescesAdjacentIdenticalLiterals(t *testing.T) {
	p, err := pattern.Compile("Repeat", "go go", enUS)
	require.NoError(t, err)
	require.Len(t, p.Atoms, 1)
	assert.Equal(t, "go", p.Atoms[0].Word)
}

func TestCompileMalformedPatterns(t *testing.T) {
	cases := []string{
		"turn on {device",     // unterminated slot name
		"{}",                  // empty slot name
		"turn on the light[s", // unterminated optional group
		"turn (on",            // unterminated alt group
		"turn on|off",         // '|' outside a group
		"turn on the light]",  // unmatched closing bracket
		"turn on the light)",  // unmatched closing paren
		"(|off)",              // empty alternative
	}
	for _, text := range cases {
		_, err := pattern.Compile("X", text, enUS)
		assert.ErrorIs(t, err, pattern.ErrMalformedPattern, text)
	}
}
