package remap

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrUnencodable is returned for values outside the Unicode code space.
	ErrUnencodable = errors.New("character cannot be encoded as UTF-16")
	// ErrPartialInjection is returned when the sender accepted fewer units than submitted.
	ErrPartialInjection = errors.New("input injection partially delivered")
)

// Sender submits synthetic Unicode key-down events, one per UTF-16 code
// unit, in order. It returns how many events were accepted.
type Sender interface {
	SendUnicode(units []uint16) (int, error)
}

// Surrogates splits a code point above the Basic Multilingual Plane into its
// UTF-16 high and low surrogates.
func Surrogates(cp rune) (hi, lo uint16) {
	v := uint32(cp) - 0x10000
	return uint16(v/0x400 + 0xD800), uint16(v%0x400 + 0xDC00)
}

// Units returns the UTF-16 code units carrying r: one for the BMP, a
// surrogate pair above it.
func Units(r rune) ([]uint16, error) {
	var buf [2]uint16
	n, err := encode(r, &buf)
	if err != nil {
		return nil, err
	}
	return append([]uint16(nil), buf[:n]...), nil
}

func encode(r rune, buf *[2]uint16) (int, error) {
	switch {
	case r < 0 || r > unicode.MaxRune:
		return 0, fmt.Errorf("%w: %#x", ErrUnencodable, r)
	case r <= 0xFFFF:
		buf[0] = uint16(r)
		return 1, nil
	default:
		buf[0], buf[1] = Surrogates(r)
		return 2, nil
	}
}

// synthesizer turns a substitute character into injected input.
type synthesizer struct {
	sender Sender
	buf    [2]uint16
}

// inject sends r as one or two down-only Unicode events and returns the
// units that were submitted. There is no retry: a repeated send could
// duplicate or reorder characters.
func (s *synthesizer) inject(r rune) ([]uint16, error) {
	n, err := encode(r, &s.buf)
	if err != nil {
		return nil, err
	}
	units := s.buf[:n]
	sent, err := s.sender.SendUnicode(units)
	if err != nil {
		return units, err
	}
	if sent != n {
		return units, fmt.Errorf("%w: %d of %d events", ErrPartialInjection, sent, n)
	}
	return units, nil
}
