package cmd_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/runekeys/charmap"
	"github.com/Alia5/runekeys/internal/cmd"
)

type row struct {
	Source string `json:"source" yaml:"source"`
	Lower  string `json:"lower" yaml:"lower"`
	Upper  string `json:"upper" yaml:"upper"`
}

func TestTablePrint(t *testing.T) {
	m := charmap.Build(charmap.Runes)

	var buf bytes.Buffer
	require.NoError(t, (&cmd.Table{Format: "text"}).Print(&buf, m))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, m.Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[1], "U+16A8 U+16AA")

	buf.Reset()
	require.NoError(t, (&cmd.Table{Format: "json"}).Print(&buf, m))
	var rows []row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, m.Len())
	assert.Equal(t, row{Source: "A", Lower: "ᚨ", Upper: "ᚪ"}, rows[0])

	buf.Reset()
	require.NoError(t, (&cmd.Table{Format: "yaml"}).Print(&buf, m))
	rows = nil
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, row{Source: "0", Lower: "0", Upper: "\U0001F548"}, rows[len(rows)-1])
}
