package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/runekeys/internal/console"
	"github.com/Alia5/runekeys/internal/hook"
	"github.com/Alia5/runekeys/internal/log"
	"github.com/Alia5/runekeys/internal/notify"
	"github.com/Alia5/runekeys/keyboard"
	"github.com/Alia5/runekeys/remap"
)

// Run starts the system-wide remapper.
type Run struct {
	ToggleKey   string `help:"Key completing the Ctrl+Alt chord that toggles mapping" default:"M" env:"RUNEKEYS_TOGGLE_KEY"`
	ExitKey     string `help:"Key completing the Ctrl+Alt chord that exits" default:"Q" env:"RUNEKEYS_EXIT_KEY"`
	BannerKey   string `help:"Key completing the Ctrl+Alt chord that reprints the banner" default:"H" env:"RUNEKEYS_BANNER_KEY"`
	Sound       bool   `help:"Play a tone when mapping is toggled" default:"true" negatable:"" env:"RUNEKEYS_SOUND"`
	HideConsole bool   `help:"Hide the console window when started from Explorer" env:"RUNEKEYS_HIDE_CONSOLE"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, rawLogger)
}

// Chords resolves the configured chord keys. They must name distinct keys.
func (r *Run) Chords() (remap.Chords, error) {
	var c remap.Chords
	for _, k := range []struct {
		flag string
		name string
		dst  *uint16
	}{
		{"toggle-key", r.ToggleKey, &c.Toggle},
		{"exit-key", r.ExitKey, &c.Exit},
		{"banner-key", r.BannerKey, &c.Banner},
	} {
		vk, err := keyboard.ParseKey(k.name)
		if err != nil {
			return remap.Chords{}, fmt.Errorf("--%s: %w", k.flag, err)
		}
		*k.dst = vk
	}
	if c.Toggle == c.Exit || c.Toggle == c.Banner || c.Exit == c.Banner {
		return remap.Chords{}, fmt.Errorf("chord keys must be distinct: toggle=%s exit=%s banner=%s",
			keyboard.KeyName(c.Toggle), keyboard.KeyName(c.Exit), keyboard.KeyName(c.Banner))
	}
	return c, nil
}

// Start installs the hook and blocks until ctx is cancelled or the exit chord is pressed.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	chords, err := r.Chords()
	if err != nil {
		return err
	}
	chars := buildTable(logger)

	out := os.Stdout
	banner := notify.BannerText(keyboard.KeyName(chords.Toggle), keyboard.KeyName(chords.Exit), keyboard.KeyName(chords.Banner))
	notifier := notify.New(notify.Config{Out: out, Sound: r.Sound, Banner: banner}, logger)
	defer notifier.Close()

	console.Println(out, banner)

	remapper := remap.New(remap.Config{
		Chars:    chars,
		Keys:     hook.SystemKeys{},
		Sender:   hook.NewSender(),
		Notifier: notifier,
		Chords:   chords,
		Logger:   logger,
		Raw:      rawLogger,
		Exit: func(code int) {
			_ = rawLogger.Close()
			os.Exit(code)
		},
	})
	notifier.Toggled(remapper.Enabled())

	fromExplorer := console.LaunchedFromExplorer(logger)
	if r.HideConsole && fromExplorer {
		go func() {
			time.Sleep(250 * time.Millisecond)
			console.Hide()
		}()
	}

	logger.Info("Starting keyboard remapper",
		"entries", chars.Len(),
		"toggle", "Ctrl+Alt+"+keyboard.KeyName(chords.Toggle),
		"exit", "Ctrl+Alt+"+keyboard.KeyName(chords.Exit))

	h := hook.New(remapper, logger)
	if err := h.Run(ctx); err != nil {
		logger.Error("keyboard hook failed", "error", err)
		if fromExplorer && !errors.Is(err, context.Canceled) {
			fmt.Println("Press any key to exit...")
			b := make([]byte, 1)
			_, _ = os.Stdin.Read(b)
		}
		return err
	}
	if n := h.Faults(); n > 0 {
		logger.Warn("Key handler faults were recovered", "count", n)
	}
	logger.Info("Keyboard remapper stopped")
	return nil
}
