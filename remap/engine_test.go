package remap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/keyboard"
	"github.com/Alia5/runekeys/remap"
)

func TestEngineResolve(t *testing.T) {
	keys := keyboard.NewSimulated()
	e := remap.NewEngine(charmap.Build(charmap.Runes), keyboard.NewInspector(keys))

	r, ok := e.Resolve('B', false)
	assert.True(t, ok)
	assert.Equal(t, 'ᛒ', r)

	r, ok = e.Resolve('B', true)
	assert.True(t, ok)
	assert.Equal(t, 'ᛔ', r)

	keys.SetToggled(keyboard.VKCapital, true)
	r, _ = e.Resolve('B', false)
	assert.Equal(t, 'ᛔ', r)
	r, _ = e.Resolve('B', true)
	assert.Equal(t, 'ᛒ', r)

	_, ok = e.Resolve(' ', false)
	assert.False(t, ok)

	keys.Press(keyboard.VKLWin)
	_, ok = e.Resolve('B', false)
	assert.False(t, ok)
	keys.ReleaseAll()

	e.SetEnabled(false)
	assert.False(t, e.Enabled())
	_, ok = e.Resolve('B', false)
	assert.False(t, ok)
}
