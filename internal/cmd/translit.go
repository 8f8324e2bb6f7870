package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/keyboard"
	"github.com/Alia5/runekeys/remap"
)

// Translit runs a text through the remapper with a simulated keyboard.
type Translit struct {
	Text       string `arg:"" help:"Text to type"`
	Caps       bool   `help:"Type with Caps Lock engaged"`
	RightShift bool   `help:"Hold Right Shift instead of Left Shift for shifted characters"`
}

// Run is called by Kong when the translit command is executed.
func (t *Translit) Run(logger *slog.Logger) error {
	fmt.Println(t.Transliterate(buildTable(logger), logger))
	return nil
}

// Transliterate presses and releases the key behind every character of the
// text and collects what the remapper injects. Characters whose key passes
// through are kept as typed.
func (t *Translit) Transliterate(m *charmap.Map, logger *slog.Logger) string {
	keys := keyboard.NewSimulated()
	keys.SetToggled(keyboard.VKCapital, t.Caps)
	rec := &remap.Recorder{}
	r := remap.New(remap.Config{
		Chars:  m,
		Keys:   keys,
		Sender: rec,
		Logger: logger,
		Exit:   func(int) {},
	})

	var shiftKey uint16 = keyboard.VKLShift
	if t.RightShift {
		shiftKey = keyboard.VKRShift
	}

	var b strings.Builder
	for _, c := range t.Text {
		vk, shift, ok := keyboard.CharToVK(c)
		if !ok {
			b.WriteRune(c)
			continue
		}
		if shift {
			keys.Press(shiftKey)
		}
		rec.Reset()
		v := r.Handle(keyboard.Event{VK: vk, Transition: keyboard.Down})
		r.Handle(keyboard.Event{VK: vk, Transition: keyboard.Up})
		keys.Release(shiftKey)

		if v == remap.Suppress {
			b.WriteString(rec.String())
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
