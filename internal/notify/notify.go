// Package notify reports remapper state changes to the user without ever
// blocking the hook thread: requests are queued to one detached worker and
// dropped when the queue is full.
package notify

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Alia5/runekeys/internal/console"
)

const (
	Awakened   = "Runes Awakened! You’ve been blessed by the ancient spirits 🔥🐦‍🔥"
	Slumbering = "Runes Slumbering. The ancient spirits are resting... 💨❄️"
)

const queueSize = 8

type kind uint8

const (
	kindToggled kind = iota
	kindBanner
)

type request struct {
	kind    kind
	enabled bool
}

// Config controls what the worker does for each request.
type Config struct {
	Out    io.Writer
	Sound  bool
	Banner string
	// Play replaces the platform tone player when set.
	Play func(enabled bool)
}

// Dispatcher implements remap.Notifier.
type Dispatcher struct {
	out     io.Writer
	sound   bool
	banner  string
	play    func(enabled bool)
	logger  *slog.Logger
	ch      chan request
	done    chan struct{}
	once    sync.Once
	dropped atomic.Uint64
}

// New starts the worker. Close stops it.
func New(cfg Config, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		out:    cfg.Out,
		sound:  cfg.Sound,
		banner: cfg.Banner,
		play:   cfg.Play,
		logger: logger,
		ch:     make(chan request, queueSize),
		done:   make(chan struct{}),
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.play == nil {
		d.play = func(enabled bool) { playTone(d.out, enabled) }
	}
	go d.run()
	return d
}

// Toggled queues the status line and tone for a mapping change.
func (d *Dispatcher) Toggled(enabled bool) {
	d.enqueue(request{kind: kindToggled, enabled: enabled})
}

// Banner queues a reprint of the banner.
func (d *Dispatcher) Banner() {
	d.enqueue(request{kind: kindBanner})
}

// Dropped returns how many requests were discarded because the worker lagged.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close finishes queued requests and stops the worker. The Dispatcher must
// not be used afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.ch) })
	<-d.done
}

func (d *Dispatcher) enqueue(r request) {
	select {
	case d.ch <- r:
	default:
		d.dropped.Add(1)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for r := range d.ch {
		switch r.kind {
		case kindToggled:
			msg := Slumbering
			if r.enabled {
				msg = Awakened
			}
			console.Status(d.out, msg)
			if d.sound {
				d.play(r.enabled)
			}
		case kindBanner:
			console.Println(d.out, d.banner)
		}
	}
	d.logger.Debug("Notifier stopped", "dropped", d.dropped.Load())
}
