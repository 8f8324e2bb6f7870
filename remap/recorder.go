package remap

import (
	"sync"
	"unicode/utf16"
)

// Recorder is a Sender that keeps everything it is given. It backs the
// translit command and the tests.
type Recorder struct {
	mu    sync.Mutex
	calls [][]uint16
	// Fail, when set, is returned by SendUnicode instead of recording.
	Fail error
}

func (r *Recorder) SendUnicode(units []uint16) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return 0, r.Fail
	}
	r.calls = append(r.calls, append([]uint16(nil), units...))
	return len(units), nil
}

// Calls returns each SendUnicode submission in order.
func (r *Recorder) Calls() [][]uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]uint16, len(r.calls))
	copy(out, r.calls)
	return out
}

// Units returns every recorded code unit, flattened.
func (r *Recorder) Units() []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uint16
	for _, c := range r.calls {
		out = append(out, c...)
	}
	return out
}

// String decodes the recorded units as text.
func (r *Recorder) String() string {
	return string(utf16.Decode(r.Units()))
}

// Reset discards recorded submissions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
