package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/internal/cmd"
	"github.com/Alia5/runekeys/internal/log"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name string
		cmd  cmd.Translit
		want string
	}{
		{name: "lowercase", cmd: cmd.Translit{Text: "ama"}, want: "ᚨᛖᚨ"},
		{name: "uppercase", cmd: cmd.Translit{Text: "AMA"}, want: "ᚪᛗᚪ"},
		{name: "caps lock inverts", cmd: cmd.Translit{Text: "aA", Caps: true}, want: "ᚪᚨ"},
		{name: "spaces and punctuation pass", cmd: cmd.Translit{Text: "a b, c."}, want: "ᚨ ᛒ, ᚲ."},
		{name: "digits map to themselves", cmd: cmd.Translit{Text: "42"}, want: "42"},
		{name: "left shift symbols pass", cmd: cmd.Translit{Text: "%!"}, want: "%!"},
		{name: "right shift reaches symbology", cmd: cmd.Translit{Text: "%)", RightShift: true}, want: "↠\U0001F548"},
		{name: "unknown characters kept", cmd: cmd.Translit{Text: "é"}, want: "é"},
	}
	m := charmap.Build(charmap.Runes)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Transliterate(m, log.Discard()))
		})
	}
}
