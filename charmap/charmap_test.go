package charmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/runekeys/charmap"
)

func TestBuildLookup(t *testing.T) {
	m := charmap.Build([]charmap.Entry{
		{Source: 'A', Lower: 'ᚨ', Upper: 'ᚪ'},
		{Source: '1', Lower: '1', Upper: '\U0001690D'},
	})

	r, ok := m.Lookup('A', false)
	require.True(t, ok)
	assert.Equal(t, 'ᚨ', r)

	r, ok = m.Lookup('A', true)
	require.True(t, ok)
	assert.Equal(t, 'ᚪ', r)

	r, ok = m.Lookup('1', true)
	require.True(t, ok)
	assert.Equal(t, '\U0001690D', r)

	_, ok = m.Lookup('B', false)
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
	assert.Empty(t, m.Duplicates())
}

func TestBuildDuplicatesLastWins(t *testing.T) {
	m := charmap.Build([]charmap.Entry{
		{Source: 'A', Lower: 'a', Upper: 'A'},
		{Source: 'B', Lower: 'b', Upper: 'B'},
		{Source: 'A', Lower: 'x', Upper: 'X'},
		{Source: 'A', Lower: 'y', Upper: 'Y'},
		{Source: 'B', Lower: 'z', Upper: 'Z'},
	})

	r, _ := m.Lookup('A', false)
	assert.Equal(t, 'y', r)
	r, _ = m.Lookup('B', true)
	assert.Equal(t, 'Z', r)

	assert.Equal(t, []rune{'A', 'B'}, m.Duplicates())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []charmap.Entry{
		{Source: 'A', Lower: 'y', Upper: 'Y'},
		{Source: 'B', Lower: 'z', Upper: 'Z'},
	}, m.Entries())
}

func TestDuplicatesReturnsCopy(t *testing.T) {
	m := charmap.Build([]charmap.Entry{{Source: 'A'}, {Source: 'A'}})
	d := m.Duplicates()
	d[0] = 'Q'
	assert.Equal(t, []rune{'A'}, m.Duplicates())
}

func TestEmptyMap(t *testing.T) {
	m := charmap.Build(nil)
	_, ok := m.Lookup('A', false)
	assert.False(t, ok)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Entries())
}

func TestRunesTable(t *testing.T) {
	m := charmap.Build(charmap.Runes)
	assert.Empty(t, m.Duplicates())
	assert.Equal(t, 36, m.Len())

	for c := 'A'; c <= 'Z'; c++ {
		_, ok := m.Lookup(c, false)
		assert.True(t, ok, "letter %c", c)
	}
	for c := '0'; c <= '9'; c++ {
		r, ok := m.Lookup(c, false)
		require.True(t, ok, "digit %c", c)
		assert.Equal(t, c, r, "digits map to themselves without shift")
	}

	r, _ := m.Lookup('M', false)
	assert.Equal(t, 'ᛖ', r)
	r, _ = m.Lookup('8', true)
	assert.Equal(t, '\U00016913', r)
	r, _ = m.Lookup('0', true)
	assert.Equal(t, '\U0001F548', r)
}
