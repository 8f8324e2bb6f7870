package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/runekeys/charmap"
)

// Table prints the character table.
type Table struct {
	Format string `help:"Output format" enum:"text,json,yaml" default:"text"`
}

type tableRow struct {
	Source string `json:"source" yaml:"source"`
	Lower  string `json:"lower" yaml:"lower"`
	Upper  string `json:"upper" yaml:"upper"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger) error {
	return t.Print(os.Stdout, buildTable(logger))
}

// Print writes the effective table to w.
func (t *Table) Print(w io.Writer, m *charmap.Map) error {
	entries := m.Entries()
	rows := make([]tableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, tableRow{Source: string(e.Source), Lower: string(e.Lower), Upper: string(e.Upper)})
	}

	switch t.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLOWER\tUPPER\tCODES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%c\t%c\t%c\t%U %U\n", e.Source, e.Lower, e.Upper, e.Lower, e.Upper)
	}
	return tw.Flush()
}

// buildTable builds the default table, warning about repeated sources.
func buildTable(logger *slog.Logger) *charmap.Map {
	m := charmap.Build(charmap.Runes)
	for _, src := range m.Duplicates() {
		logger.Warn("Duplicate source in character table, last entry wins", "source", string(src))
	}
	return m
}
