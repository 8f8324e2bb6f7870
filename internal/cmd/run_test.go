package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/runekeys/internal/cmd"
	"github.com/Alia5/runekeys/keyboard"
	"github.com/Alia5/runekeys/remap"
)

func TestRunChords(t *testing.T) {
	tests := []struct {
		name    string
		run     cmd.Run
		want    remap.Chords
		wantErr string
	}{
		{
			name: "defaults",
			run:  cmd.Run{ToggleKey: "M", ExitKey: "Q", BannerKey: "H"},
			want: remap.DefaultChords,
		},
		{
			name: "custom keys",
			run:  cmd.Run{ToggleKey: "F9", ExitKey: "escape", BannerKey: "0x48"},
			want: remap.Chords{Toggle: keyboard.VKF9, Exit: keyboard.VKEscape, Banner: keyboard.VKH},
		},
		{
			name:    "unknown key",
			run:     cmd.Run{ToggleKey: "Hyper", ExitKey: "Q", BannerKey: "H"},
			wantErr: "--toggle-key",
		},
		{
			name:    "same key twice",
			run:     cmd.Run{ToggleKey: "m", ExitKey: "M", BannerKey: "H"},
			wantErr: "distinct",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run.Chords()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
