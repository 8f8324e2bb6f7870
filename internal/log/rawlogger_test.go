package log

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestFormatRaw(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.UTC)

	line := string(formatRaw(rawChunk{at: at, in: true, data: []byte{0x41, 0x01, 0x04, 0x00, 0x01}}))
	assert.Equal(t, "2024/03/09 14:05:07.123 HOOK 5 bytes: 41 01 04 00 01\n", line)

	line = string(formatRaw(rawChunk{at: at, data: []byte{0xd8, 0x3d, 0xdd, 0x4d}}))
	assert.Equal(t, "2024/03/09 14:05:07.123 SEND 4 bytes: d8 3d dd 4d\n", line)
}

func TestRawLoggerWritesAndCloses(t *testing.T) {
	var buf lockedBuffer
	r := NewRaw(&buf)

	data := []byte{0x16, 0xa8}
	r.Log(false, data)
	data[0] = 0xff // Log keeps its own copy
	r.Log(true, nil)
	r.Log(true, []byte{0x41})
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "SEND 2 bytes: 16 a8"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "HOOK 1 bytes: 41"), lines[1])
	assert.Zero(t, r.Dropped())
}

type blockingWriter struct {
	release chan struct{}
}

func (b *blockingWriter) Write(p []byte) (int, error) {
	<-b.release
	return len(p), nil
}

func TestRawLoggerDropsWhenFull(t *testing.T) {
	w := &blockingWriter{release: make(chan struct{})}
	r := NewRaw(w)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < rawQueueSize*2; i++ {
			r.Log(true, []byte{byte(i)})
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Log blocked on a stalled writer")
	}
	assert.GreaterOrEqual(t, r.Dropped(), uint64(rawQueueSize-1))

	close(w.release)
	require.NoError(t, r.Close())
}

func TestRawLoggerNil(t *testing.T) {
	r := NewRaw(nil)
	r.Log(true, []byte{1})
	assert.Zero(t, r.Dropped())
	assert.False(t, r.Enabled())
	w := NewRaw(&bytes.Buffer{})
	assert.True(t, w.Enabled())
	require.NoError(t, w.Close())
	assert.NoError(t, r.Close())
}
