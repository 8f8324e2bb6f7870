// Package remap decides, for every physical key event, whether to let it
// through or to replace it with a substitute character.
//
// A Remapper is owned by the single thread that receives hook callbacks. None
// of its methods lock or block on the event path, and nothing allocates there
// unless raw tracing is enabled.
package remap

import (
	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/keyboard"
)

// Engine resolves a source character to its substitute under the current
// modifier state. It owns the mapping-enabled flag.
type Engine struct {
	chars   *charmap.Map
	keys    keyboard.Inspector
	enabled bool
}

// NewEngine returns an enabled Engine.
func NewEngine(chars *charmap.Map, keys keyboard.Inspector) *Engine {
	return &Engine{chars: chars, keys: keys, enabled: true}
}

// Enabled reports whether mapping is active.
func (e *Engine) Enabled() bool { return e.enabled }

// SetEnabled turns mapping on or off.
func (e *Engine) SetEnabled(on bool) { e.enabled = on }

// Resolve returns the substitute for source, or false when the event should pass.
//
// Ctrl, Alt and the Windows keys always suppress remapping so shortcuts keep
// working. Shift and Caps Lock cancel each other out.
func (e *Engine) Resolve(source rune, shift bool) (rune, bool) {
	if !e.enabled {
		return 0, false
	}
	if e.keys.StrongModifierDown() {
		return 0, false
	}
	upper := shift != e.keys.CapsLockEngaged()
	return e.chars.Lookup(source, upper)
}
