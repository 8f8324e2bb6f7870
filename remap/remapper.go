package remap

import (
	"errors"
	"log/slog"
	"os"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/internal/log"
	"github.com/Alia5/runekeys/keyboard"
)

// Verdict tells the hook what to do with the physical event.
type Verdict uint8

const (
	// Pass hands the event to the next hook in the chain.
	Pass Verdict = iota
	// Suppress swallows the event.
	Suppress
)

func (v Verdict) String() string {
	if v == Suppress {
		return "suppress"
	}
	return "pass"
}

// Config wires a Remapper to its collaborators.
type Config struct {
	Chars    *charmap.Map
	Keys     keyboard.KeyState
	Sender   Sender
	Notifier Notifier
	// Chords defaults to DefaultChords when left zero.
	Chords   Chords
	Logger   *slog.Logger
	Raw      log.RawLogger
	// Exit terminates the process. Defaults to os.Exit.
	Exit     func(code int)
}

// Remapper is the hook callback. It owns the only mutable state of the
// pipeline (mapping enabled, toggle chord fired) and must be driven from a
// single goroutine.
type Remapper struct {
	keys     keyboard.Inspector
	engine   *Engine
	commands commands
	synth    synthesizer
	logger   *slog.Logger
	raw      log.RawLogger
	tracing  bool
}

// New returns a Remapper with mapping enabled.
func New(cfg Config) *Remapper {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}
	raw := cfg.Raw
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	exit := cfg.Exit
	if exit == nil {
		exit = os.Exit
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	sender := cfg.Sender
	if sender == nil {
		sender = nopSender{}
	}
	chars := cfg.Chars
	if chars == nil {
		chars = charmap.Build(nil)
	}

	ks := cfg.Keys
	if ks == nil {
		ks = keyboard.NewSimulated()
	}
	chords := cfg.Chords
	if chords == (Chords{}) {
		chords = DefaultChords
	}

	keys := keyboard.NewInspector(ks)
	engine := NewEngine(chars, keys)
	return &Remapper{
		keys:   keys,
		engine: engine,
		commands: commands{
			chords:   chords,
			engine:   engine,
			notifier: notifier,
			exit:     exit,
			logger:   logger,
		},
		synth:   synthesizer{sender: sender},
		logger:  logger,
		raw:     raw,
		tracing: raw.Enabled(),
	}
}

// Enabled reports whether mapping is active.
func (r *Remapper) Enabled() bool {
	return r.engine.Enabled()
}

// Handle decides the fate of one physical key event.
//
// Chords come first, then the left-Shift digit escape, then the character
// map. A mapped key-down injects its substitute; the matching key-up is
// swallowed without a synthetic release. Anything that is not a plain
// down/up of a byte-sized key passes through untouched.
func (r *Remapper) Handle(ev keyboard.Event) Verdict {
	if ev.Transition != keyboard.Down && ev.Transition != keyboard.Up {
		return Pass
	}
	if ev.VK == 0 || ev.VK > 0xFF || ev.VK == keyboard.VKPacket {
		return Pass
	}

	snap := r.keys.Snapshot()
	v, units := r.decide(snap, ev)
	if r.tracing {
		r.trace(snap, ev, v)
		r.traceUnits(units)
	}
	return v
}

func (r *Remapper) decide(snap keyboard.Snapshot, ev keyboard.Event) (Verdict, []uint16) {
	if r.commands.handle(snap, ev) {
		return Suppress, nil
	}

	// Left Shift + digit always types the digit's own shifted symbol.
	// Right Shift + digit reaches the table's uppercase column.
	if snap.LeftShift() && keyboard.IsDigit(ev.VK) {
		return Pass, nil
	}

	sub, ok := r.engine.Resolve(rune(ev.VK), snap.Shift())
	if !ok {
		return Pass, nil
	}
	if ev.Transition != keyboard.Down {
		return Suppress, nil
	}
	units, err := r.synth.inject(sub)
	if err != nil {
		r.logger.Error("failed to inject substitute", "key", keyboard.KeyName(ev.VK), "substitute", string(sub), "error", err)
	}
	return Suppress, units
}

func (r *Remapper) trace(snap keyboard.Snapshot, ev keyboard.Event, v Verdict) {
	var caps byte
	if snap.CapsLock {
		caps = 1
	}
	b := [5]byte{byte(ev.VK), byte(ev.Transition), snap.Modifiers, caps, byte(v)}
	r.raw.Log(true, b[:])
}

func (r *Remapper) traceUnits(units []uint16) {
	var b [4]byte
	for i, u := range units {
		b[2*i], b[2*i+1] = byte(u>>8), byte(u)
	}
	r.raw.Log(false, b[:2*len(units)])
}

// ErrNoSender is reported when a Remapper was built without a Sender.
var ErrNoSender = errors.New("no input sender configured")

type nopSender struct{}

func (nopSender) SendUnicode([]uint16) (int, error) { return 0, ErrNoSender }

type nopNotifier struct{}

func (nopNotifier) Toggled(bool) {}
func (nopNotifier) Banner()      {}
