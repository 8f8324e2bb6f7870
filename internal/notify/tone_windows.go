//go:build windows

package notify

import (
	"io"

	"golang.org/x/sys/windows"
)

var procBeep = windows.NewLazySystemDLL("kernel32.dll").NewProc("Beep")

type note struct{ hz, ms uintptr }

var (
	risingTone  = []note{{523, 80}, {659, 80}, {784, 140}}
	fallingTone = []note{{784, 80}, {587, 80}, {392, 160}}
)

// playTone blocks for the length of the cue; it only runs on the worker.
func playTone(_ io.Writer, enabled bool) {
	notes := fallingTone
	if enabled {
		notes = risingTone
	}
	for _, n := range notes {
		_, _, _ = procBeep.Call(n.hz, n.ms)
	}
}
