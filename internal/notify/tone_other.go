//go:build !windows

package notify

import (
	"io"

	"github.com/Alia5/runekeys/internal/console"
)

func playTone(out io.Writer, _ bool) {
	console.Bell(out)
}
