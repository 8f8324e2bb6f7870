package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// rawQueueSize bounds the lines waiting for the writer goroutine.
const rawQueueSize = 1024

// RawLogger traces hook traffic as hex dumps without blocking the caller.
type RawLogger interface {
	// Log records one chunk. in=true is a physical event seen by the hook,
	// in=false is synthetic input sent by the remapper.
	Log(in bool, data []byte)
	// Enabled reports whether Log writes anywhere.
	Enabled() bool
	// Dropped returns how many chunks were discarded because the queue was full.
	Dropped() uint64
	Close() error
}

type rawChunk struct {
	at   time.Time
	in   bool
	data []byte
}

// rawLogger queues chunks and formats them on its own goroutine.
type rawLogger struct {
	w       io.Writer
	ch      chan rawChunk
	done    chan struct{}
	once    sync.Once
	dropped atomic.Uint64
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	r := &rawLogger{w: w}
	if w == nil {
		return r
	}
	r.ch = make(chan rawChunk, rawQueueSize)
	r.done = make(chan struct{})
	go r.run()
	return r
}

func (r *rawLogger) Log(in bool, data []byte) {
	if len(data) == 0 || r.ch == nil {
		return
	}
	c := rawChunk{at: time.Now(), in: in, data: append([]byte(nil), data...)}
	select {
	case r.ch <- c:
	default:
		r.dropped.Add(1)
	}
}

func (r *rawLogger) Enabled() bool {
	return r.ch != nil
}

func (r *rawLogger) Dropped() uint64 {
	return r.dropped.Load()
}

// Close drains queued chunks and stops the writer. Log must not be called afterwards.
func (r *rawLogger) Close() error {
	if r.ch == nil {
		return nil
	}
	r.once.Do(func() { close(r.ch) })
	<-r.done
	return nil
}

func (r *rawLogger) run() {
	defer close(r.done)
	for c := range r.ch {
		_, _ = r.w.Write(formatRaw(c))
	}
}

// formatRaw emits a single-line raw log with timestamp and hex dump.
func formatRaw(c rawChunk) []byte {
	dir := "SEND"
	if c.in {
		dir = "HOOK"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range c.data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	return []byte(fmt.Sprintf("%s %s %d bytes: %s\n",
		c.at.Format("2006/01/02 15:04:05.000"),
		dir,
		len(c.data),
		hexbuf.String()))
}
