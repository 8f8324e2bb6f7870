package remap_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/remap"
)

func TestSurrogates(t *testing.T) {
	hi, lo := remap.Surrogates(0x1F54D)
	assert.Equal(t, uint16(0xD83D), hi)
	assert.Equal(t, uint16(0xDD4D), lo)

	hi, lo = remap.Surrogates(0x10000)
	assert.Equal(t, uint16(0xD800), hi)
	assert.Equal(t, uint16(0xDC00), lo)

	hi, lo = remap.Surrogates(0x10FFFF)
	assert.Equal(t, uint16(0xDBFF), hi)
	assert.Equal(t, uint16(0xDFFF), lo)
}

func TestUnits(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want []uint16
	}{
		{name: "ascii", in: 'a', want: []uint16{0x61}},
		{name: "runic", in: 'ᚨ', want: []uint16{0x16A8}},
		{name: "top of bmp", in: 0xFFFF, want: []uint16{0xFFFF}},
		{name: "bamum", in: '\U0001690D', want: []uint16{0xD81A, 0xDD0D}},
		{name: "cuneiform", in: '\U00012310', want: []uint16{0xD808, 0xDF10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := remap.Units(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitsMatchesUTF16ForWholeTable(t *testing.T) {
	for _, e := range charmap.Runes {
		for _, r := range []rune{e.Lower, e.Upper} {
			got, err := remap.Units(r)
			require.NoError(t, err, "%U", r)
			assert.Equal(t, utf16.Encode([]rune{r}), got, "%U", r)
		}
	}
}

func TestUnitsRejectsOutOfRange(t *testing.T) {
	_, err := remap.Units(0x110000)
	assert.ErrorIs(t, err, remap.ErrUnencodable)
	_, err = remap.Units(-1)
	assert.ErrorIs(t, err, remap.ErrUnencodable)
}

func TestRecorder(t *testing.T) {
	rec := &remap.Recorder{}
	n, err := rec.SendUnicode([]uint16{0x16A8})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, _ = rec.SendUnicode([]uint16{0xD83D, 0xDD4D})

	assert.Equal(t, [][]uint16{{0x16A8}, {0xD83D, 0xDD4D}}, rec.Calls())
	assert.Equal(t, "ᚨ\U0001F54D", rec.String())

	rec.Reset()
	assert.Empty(t, rec.Calls())
	assert.Equal(t, "", rec.String())
}
