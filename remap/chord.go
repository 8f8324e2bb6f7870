package remap

import (
	"log/slog"

	"github.com/Alia5/runekeys/keyboard"
)

// Notifier receives the side effects of chord commands. Both methods are
// called from the hook thread and must return without blocking.
type Notifier interface {
	Toggled(enabled bool)
	Banner()
}

// Chords names the key that completes each Ctrl+Alt command.
type Chords struct {
	Toggle uint16
	Exit   uint16
	Banner uint16
}

// DefaultChords are Ctrl+Alt+M (toggle), Ctrl+Alt+Q (exit) and Ctrl+Alt+H (banner).
var DefaultChords = Chords{
	Toggle: keyboard.VKM,
	Exit:   keyboard.VKQ,
	Banner: keyboard.VKH,
}

// commands recognises the Ctrl+Alt chords. The toggle chord is edge-triggered:
// it fires on the first key-down, ignores auto-repeat, and re-arms on key-up.
type commands struct {
	chords   Chords
	engine   *Engine
	notifier Notifier
	exit     func(code int)
	logger   *slog.Logger

	toggleFired bool
}

// handle evaluates the chords in priority order and reports whether the event
// was consumed.
func (c *commands) handle(snap keyboard.Snapshot, ev keyboard.Event) bool {
	// The toggle key re-arms on release even when Ctrl or Alt went up first.
	if ev.VK == c.chords.Toggle && ev.Transition == keyboard.Up {
		c.toggleFired = false
	}
	if !snap.Ctrl() || !snap.Alt() {
		return false
	}
	switch ev.VK {
	case c.chords.Toggle:
		c.toggle(ev.Transition)
		return true
	case c.chords.Exit:
		if ev.Transition == keyboard.Down {
			c.logger.Info("Exiting the application...")
			c.exit(0)
		}
		return false
	case c.chords.Banner:
		if ev.Transition == keyboard.Down {
			c.notifier.Banner()
		}
		return true
	}
	return false
}

func (c *commands) toggle(t keyboard.Transition) {
	switch t {
	case keyboard.Down:
		if c.toggleFired {
			return
		}
		c.toggleFired = true
		enabled := !c.engine.Enabled()
		c.engine.SetEnabled(enabled)
		c.logger.Debug("Mapping toggled", "enabled", enabled)
		c.notifier.Toggled(enabled)
	}
}
