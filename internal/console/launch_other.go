//go:build !windows

package console

import "log/slog"

// LaunchedFromExplorer is always false off Windows.
func LaunchedFromExplorer(*slog.Logger) bool {
	return false
}

// Hide is a no-op off Windows.
func Hide() {}
