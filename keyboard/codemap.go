package keyboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for names that do not denote a key.
var ErrUnknownKey = errors.New("unknown key")

// keyNames maps virtual-key codes that are not a letter or digit to readable names.
var keyNames = map[uint16]string{
	VKBack:      "Backspace",
	VKTab:       "Tab",
	VKReturn:    "Enter",
	VKShift:     "Shift",
	VKControl:   "Ctrl",
	VKMenu:      "Alt",
	VKPause:     "Pause",
	VKCapital:   "CapsLock",
	VKEscape:    "Escape",
	VKSpace:     "Space",
	VKPrior:     "PageUp",
	VKNext:      "PageDown",
	VKEnd:       "End",
	VKHome:      "Home",
	VKLeft:      "Left",
	VKUp:        "Up",
	VKRight:     "Right",
	VKDown:      "Down",
	VKInsert:    "Insert",
	VKDelete:    "Delete",
	VKLWin:      "LWin",
	VKRWin:      "RWin",
	VKApps:      "Apps",
	VKNumLock:   "NumLock",
	VKScroll:    "ScrollLock",
	VKLShift:    "LShift",
	VKRShift:    "RShift",
	VKLControl:  "LCtrl",
	VKRControl:  "RCtrl",
	VKLMenu:     "LAlt",
	VKRMenu:     "RAlt",
	VKOEM1:      "Semicolon",
	VKOEMPlus:   "Equal",
	VKOEMComma:  "Comma",
	VKOEMMinus:  "Minus",
	VKOEMPeriod: "Period",
	VKOEM2:      "Slash",
	VKOEM3:      "Grave",
	VKOEM4:      "LeftBrace",
	VKOEM5:      "Backslash",
	VKOEM6:      "RightBrace",
	VKOEM7:      "Apostrophe",
	VKPacket:    "Packet",
}

// keyByName is the case-insensitive reverse of keyNames.
var keyByName = func() map[string]uint16 {
	m := make(map[string]uint16, len(keyNames))
	for vk, name := range keyNames {
		m[strings.ToLower(name)] = vk
	}
	return m
}()

// charToVK maps ASCII characters to the US-layout key that produces them.
// For shifted characters (uppercase, symbols), check shiftChars.
var charToVK = map[rune]uint16{
	'1': VK1, '2': VK2, '3': VK3, '4': VK4, '5': VK5,
	'6': VK6, '7': VK7, '8': VK8, '9': VK9, '0': VK0,

	'!': VK1, '@': VK2, '#': VK3, '$': VK4, '%': VK5,
	'^': VK6, '&': VK7, '*': VK8, '(': VK9, ')': VK0,

	'-': VKOEMMinus, '_': VKOEMMinus,
	'=': VKOEMPlus, '+': VKOEMPlus,
	'[': VKOEM4, '{': VKOEM4,
	']': VKOEM6, '}': VKOEM6,
	'\\': VKOEM5, '|': VKOEM5,
	';': VKOEM1, ':': VKOEM1,
	'\'': VKOEM7, '"': VKOEM7,
	'`': VKOEM3, '~': VKOEM3,
	',': VKOEMComma, '<': VKOEMComma,
	'.': VKOEMPeriod, '>': VKOEMPeriod,
	'/': VKOEM2, '?': VKOEM2,

	' ':  VKSpace,
	'\n': VKReturn,
	'\r': VKReturn,
	'\t': VKTab,
}

// shiftChars defines which non-letter characters require Shift.
var shiftChars = map[rune]bool{
	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,
	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// KeyName returns a readable name for a virtual-key code.
func KeyName(vk uint16) string {
	switch {
	case vk >= VKA && vk <= VKZ, vk >= VK0 && vk <= VK9:
		return string(rune(vk))
	case vk >= VKF1 && vk <= VKF24:
		return "F" + strconv.Itoa(int(vk-VKF1)+1)
	}
	if name, ok := keyNames[vk]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", vk)
}

// ParseKey resolves a key name ("M", "m", "F5", "Escape") or a hex code ("0x4D").
func ParseKey(name string) (uint16, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16(c - 'a' + 'A'), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return uint16(c), nil
		}
		if vk, ok := charToVK[rune(c)]; ok {
			return vk, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") {
		n, err := strconv.ParseUint(lower[2:], 16, 8)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		return uint16(n), nil
	}
	if lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 24 {
			return uint16(VKF1 + n - 1), nil
		}
	}
	if vk, ok := keyByName[lower]; ok {
		return vk, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// CharToVK returns the virtual key that types c on a US layout and whether
// Shift has to be held for it. ok is false for characters no single key produces.
func CharToVK(c rune) (vk uint16, shift bool, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint16(c - 'a' + 'A'), false, true
	case c >= 'A' && c <= 'Z':
		return uint16(c), true, true
	}
	vk, ok = charToVK[c]
	return vk, shiftChars[c], ok
}

// IsDigit reports whether vk is one of the top-row digit keys.
func IsDigit(vk uint16) bool {
	return vk >= VK0 && vk <= VK9
}
