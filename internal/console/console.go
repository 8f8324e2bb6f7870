// Package console holds small helpers for the text console the remapper
// reports to.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1B[2K"

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Status prints a single status line. On a terminal the line is rewritten in
// place so consecutive statuses replace each other; otherwise it is appended.
func Status(w io.Writer, text string) {
	if IsTerminal(w) {
		_, _ = io.WriteString(w, clearLine+text)
		return
	}
	_, _ = io.WriteString(w, text+"\n")
}

// Println ends any pending status line before printing text.
func Println(w io.Writer, text string) {
	if IsTerminal(w) {
		_, _ = io.WriteString(w, clearLine)
	}
	_, _ = io.WriteString(w, text+"\n")
}

// Bell rings the terminal bell when w is a terminal.
func Bell(w io.Writer) {
	if IsTerminal(w) {
		_, _ = io.WriteString(w, "\a")
	}
}
