//go:build !windows

package hook

import "context"

// Run reports ErrNotAvailable: only Windows exposes a low-level keyboard hook.
func (h *Hook) Run(ctx context.Context) error {
	return ErrNotAvailable
}

// SystemKeys reports no key held and no lock engaged.
type SystemKeys struct{}

func (SystemKeys) IsDown(uint16) bool    { return false }
func (SystemKeys) IsToggled(uint16) bool { return false }

// Sender is the platform Sender; it cannot inject anything here.
type Sender struct{}

// NewSender returns the platform Sender.
func NewSender() Sender {
	return Sender{}
}

func (Sender) SendUnicode([]uint16) (int, error) {
	return 0, ErrNotAvailable
}
