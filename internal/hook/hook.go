// Package hook connects a Remapper to the operating system's low-level
// keyboard hook. Only the extraction of the raw event and the
// pass/suppress return live here; every decision is made by the handler.
package hook

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Alia5/runekeys/keyboard"
	"github.com/Alia5/runekeys/remap"
)

var (
	// ErrNotAvailable is returned on platforms without a low-level keyboard hook.
	ErrNotAvailable = errors.New("low-level keyboard hook not available on this platform")
	// ErrAlreadyRunning is returned when a second hook is started in the same process.
	ErrAlreadyRunning = errors.New("keyboard hook already running")
)

// Window messages delivered as wParam to a WH_KEYBOARD_LL procedure.
const (
	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105
)

// Handler decides the fate of one key event. It is called on the hook thread.
type Handler interface {
	Handle(ev keyboard.Event) remap.Verdict
}

// Hook delivers system-wide key events to a Handler.
type Hook struct {
	handler Handler
	logger  *slog.Logger
	faults  atomic.Uint64
}

// New returns a Hook that feeds handler.
func New(handler Handler, logger *slog.Logger) *Hook {
	return &Hook{handler: handler, logger: logger}
}

// Faults returns how many handler panics were turned into pass-through.
func (h *Hook) Faults() uint64 {
	return h.faults.Load()
}

// translate maps a hook message onto an Event. System key messages arrive
// while Alt is held without Ctrl (or for F10); they are delivered too so a
// release after Ctrl went up still re-arms the toggle chord. Anything else
// is not ours to interpret.
func translate(wParam uintptr, vkCode uint32) (keyboard.Event, bool) {
	var t keyboard.Transition
	switch wParam {
	case wmKeyDown, wmSysKeyDown:
		t = keyboard.Down
	case wmKeyUp, wmSysKeyUp:
		t = keyboard.Up
	default:
		return keyboard.Event{}, false
	}
	if vkCode == 0 || vkCode > 0xFF {
		return keyboard.Event{}, false
	}
	return keyboard.Event{VK: uint16(vkCode), Transition: t}, true
}

// dispatch runs the handler for one raw hook message. A panic in the handler
// must never escape into the OS input path, so it is logged and the event
// passes through.
func (h *Hook) dispatch(wParam uintptr, vkCode uint32) (v remap.Verdict) {
	ev, ok := translate(wParam, vkCode)
	if !ok {
		return remap.Pass
	}
	defer func() {
		if p := recover(); p != nil {
			h.faults.Add(1)
			h.logger.Error("recovered from fault in key handler", "key", keyboard.KeyName(ev.VK), "transition", ev.Transition, "panic", fmt.Sprint(p))
			v = remap.Pass
		}
	}()
	return h.handler.Handle(ev)
}
