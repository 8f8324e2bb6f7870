package notify

import (
	"strings"
	"unicode/utf8"
)

const frameRunes = "ᚨᛒᚲᚦᛅᚠᛞᚺᛁᚴᛘᛐᛖᚾᛜᛩᛶᛃᛋᛄᚢᛡᚳ×ᛣᛇ"

// BannerText renders the welcome frame listing the chord keys.
func BannerText(toggleKey, exitKey, bannerKey string) string {
	lines := []string{
		"𖤍 𖤍     ᛤᚪᛚᛯᛉᚱᛂᚯ     𖤍 𖤍",
		"𖤍 𖤍   Welcome to the Runic Keyboard mapper!   𖤍 𖤍",
		"This application will map the English alphabet to the Valkyrie lang runes.",
		"Press Ctrl + Alt + " + toggleKey + " to toggle the mapping.",
		"Press RShift + (number) to use the custom symbology.",
		"Press Ctrl + Alt + " + bannerKey + " to show this banner again.",
		"Press Ctrl + Alt + " + exitKey + " to exit the application.",
	}
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4

	frame := []rune(frameRunes)
	border := make([]rune, width+2)
	for i := range border {
		border[i] = frame[i%len(frame)]
	}

	var b strings.Builder
	b.WriteString(string(border))
	b.WriteByte('\n')
	for i, l := range lines {
		pad := width - utf8.RuneCountInString(l)
		left := pad / 2
		b.WriteRune(frame[i%len(frame)])
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", pad-left))
		b.WriteRune(frame[(len(frame)-1-i)%len(frame)])
		b.WriteByte('\n')
	}
	b.WriteString(string(border))
	return b.String()
}
