// Package keyboard provides Windows virtual-key codes, key-state queries and the
// per-event modifier snapshot used by the remapper.
package keyboard

import "sync"

// Transition is the direction of a physical key event.
type Transition uint8

const (
	Down Transition = iota + 1
	Up
)

func (t Transition) String() string {
	switch t {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a single key transition delivered by the hook.
type Event struct {
	VK         uint16
	Transition Transition
}

// KeyState answers instantaneous key-state questions.
//
// IsDown reports whether the key is physically held at call time (not the
// message-queue state). IsToggled reports the latched state of a lock key.
type KeyState interface {
	IsDown(vk uint16) bool
	IsToggled(vk uint16) bool
}

// Snapshot is the modifier state sampled for one event.
type Snapshot struct {
	Modifiers uint8 // ModCtrl, ModAlt, ModLeftShift, ModRightShift, ModLeftWin, ModRightWin
	CapsLock  bool
}

func (s Snapshot) Ctrl() bool       { return s.Modifiers&ModCtrl != 0 }
func (s Snapshot) Alt() bool        { return s.Modifiers&ModAlt != 0 }
func (s Snapshot) LeftShift() bool  { return s.Modifiers&ModLeftShift != 0 }
func (s Snapshot) RightShift() bool { return s.Modifiers&ModRightShift != 0 }

// Shift reports whether either Shift key is held.
func (s Snapshot) Shift() bool { return s.Modifiers&(ModLeftShift|ModRightShift) != 0 }

// Strong reports whether Ctrl, Alt or either Windows key is held.
func (s Snapshot) Strong() bool {
	return s.Modifiers&(ModCtrl|ModAlt|ModLeftWin|ModRightWin) != 0
}

// Inspector is a stateless query layer over a KeyState.
type Inspector struct {
	ks KeyState
}

// NewInspector returns an Inspector reading from ks.
func NewInspector(ks KeyState) Inspector {
	return Inspector{ks: ks}
}

// StrongModifierDown reports whether Ctrl, Alt, or either Windows key is held right now.
func (in Inspector) StrongModifierDown() bool {
	return in.ks.IsDown(VKControl) ||
		in.ks.IsDown(VKMenu) ||
		in.ks.IsDown(VKLWin) ||
		in.ks.IsDown(VKRWin)
}

// CapsLockEngaged reports the latched Caps Lock state.
func (in Inspector) CapsLockEngaged() bool {
	return in.ks.IsToggled(VKCapital)
}

// Snapshot samples every modifier the remapper looks at.
func (in Inspector) Snapshot() Snapshot {
	var s Snapshot
	if in.ks.IsDown(VKControl) {
		s.Modifiers |= ModCtrl
	}
	if in.ks.IsDown(VKMenu) {
		s.Modifiers |= ModAlt
	}
	if in.ks.IsDown(VKLShift) {
		s.Modifiers |= ModLeftShift
	}
	if in.ks.IsDown(VKRShift) {
		s.Modifiers |= ModRightShift
	}
	if in.ks.IsDown(VKLWin) {
		s.Modifiers |= ModLeftWin
	}
	if in.ks.IsDown(VKRWin) {
		s.Modifiers |= ModRightWin
	}
	s.CapsLock = in.ks.IsToggled(VKCapital)
	return s
}

// SimulatedState is a KeyState driven by the caller, for tests and offline use.
// Pressing a left/right modifier also reports its generic key (VKShift,
// VKControl, VKMenu) as held, mirroring how Windows answers GetAsyncKeyState.
type SimulatedState struct {
	mu      sync.RWMutex
	down    map[uint16]bool
	toggled map[uint16]bool
}

// NewSimulated returns a SimulatedState with nothing held and no lock engaged.
func NewSimulated() *SimulatedState {
	return &SimulatedState{
		down:    make(map[uint16]bool),
		toggled: make(map[uint16]bool),
	}
}

// Press marks keys as held.
func (s *SimulatedState) Press(vks ...uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vk := range vks {
		s.down[vk] = true
	}
}

// Release marks keys as no longer held.
func (s *SimulatedState) Release(vks ...uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vk := range vks {
		delete(s.down, vk)
	}
}

// ReleaseAll clears every held key. Lock states are kept.
func (s *SimulatedState) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.down)
}

// SetToggled sets the latched state of a lock key.
func (s *SimulatedState) SetToggled(vk uint16, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggled[vk] = on
}

func (s *SimulatedState) IsDown(vk uint16) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.down[vk] {
		return true
	}
	switch vk {
	case VKShift:
		return s.down[VKLShift] || s.down[VKRShift]
	case VKControl:
		return s.down[VKLControl] || s.down[VKRControl]
	case VKMenu:
		return s.down[VKLMenu] || s.down[VKRMenu]
	}
	return false
}

func (s *SimulatedState) IsToggled(vk uint16) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toggled[vk]
}
