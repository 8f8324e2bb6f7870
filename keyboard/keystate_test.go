package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/runekeys/keyboard"
)

func TestSimulatedStateGenericModifiers(t *testing.T) {
	ks := keyboard.NewSimulated()
	assert.False(t, ks.IsDown(keyboard.VKShift))

	ks.Press(keyboard.VKRShift)
	assert.True(t, ks.IsDown(keyboard.VKShift))
	assert.True(t, ks.IsDown(keyboard.VKRShift))
	assert.False(t, ks.IsDown(keyboard.VKLShift))

	ks.Press(keyboard.VKLControl, keyboard.VKRMenu)
	assert.True(t, ks.IsDown(keyboard.VKControl))
	assert.True(t, ks.IsDown(keyboard.VKMenu))

	ks.Release(keyboard.VKLControl)
	assert.False(t, ks.IsDown(keyboard.VKControl))

	ks.SetToggled(keyboard.VKCapital, true)
	ks.ReleaseAll()
	assert.False(t, ks.IsDown(keyboard.VKShift))
	assert.False(t, ks.IsDown(keyboard.VKMenu))
	assert.True(t, ks.IsToggled(keyboard.VKCapital), "ReleaseAll keeps lock state")
}

func TestInspectorSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		held    []uint16
		caps    bool
		want    uint8
		strong  bool
		shift   bool
		leftSh  bool
		rightSh bool
	}{
		{name: "nothing held"},
		{name: "left shift", held: []uint16{keyboard.VKLShift}, want: keyboard.ModLeftShift, shift: true, leftSh: true},
		{name: "right shift", held: []uint16{keyboard.VKRShift}, want: keyboard.ModRightShift, shift: true, rightSh: true},
		{name: "ctrl alt", held: []uint16{keyboard.VKLControl, keyboard.VKLMenu}, want: keyboard.ModCtrl | keyboard.ModAlt, strong: true},
		{name: "windows key", held: []uint16{keyboard.VKRWin}, want: keyboard.ModRightWin, strong: true},
		{name: "caps only", caps: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := keyboard.NewSimulated()
			ks.Press(tt.held...)
			ks.SetToggled(keyboard.VKCapital, tt.caps)
			in := keyboard.NewInspector(ks)

			snap := in.Snapshot()
			assert.Equal(t, tt.want, snap.Modifiers)
			assert.Equal(t, tt.caps, snap.CapsLock)
			assert.Equal(t, tt.strong, snap.Strong())
			assert.Equal(t, tt.strong, in.StrongModifierDown())
			assert.Equal(t, tt.shift, snap.Shift())
			assert.Equal(t, tt.leftSh, snap.LeftShift())
			assert.Equal(t, tt.rightSh, snap.RightShift())
			assert.Equal(t, tt.caps, in.CapsLockEngaged())
		})
	}
}

func TestTransitionString(t *testing.T) {
	assert.Equal(t, "down", keyboard.Down.String())
	assert.Equal(t, "up", keyboard.Up.String())
	assert.Equal(t, "unknown", keyboard.Transition(0).String())
}
