package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/clientele/config"
	"github.com/s0up4200/clientele/filter"
)

const maxCellWidth = 60

// column is a table column; path is a dotted path into the record, as
// understood by filter.Lookup.
type column struct {
	header string
	path   string
}

func columns(pairs ...string) []column {
	cols := make([]column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cols = append(cols, column{header: pairs[i], path: pairs[i+1]})
	}
	return cols
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderList applies --filter and --preset to a list result and prints
// what is left.
func renderList(cmd *cobra.Command, v any, cols []column) error {
	records, err := filter.ToRecords(v)
	if err != nil {
		return err
	}

	f, err := filters.Resolve(filterExpr, presets...)
	if err != nil {
		return err
	}
	if f != nil {
		before := len(records)
		records, err = filters.Apply(cmd.Context(), f, records)
		if err != nil {
			return err
		}
		logger.Debug().Int("total", before).Int("matched", len(records)).Msg("Filter applied")
	}

	return writeRecords(cmd.OutOrStdout(), cfg.Output.Format, records, cols)
}

// renderItem prints a single object. Tables show one row per column.
func renderItem(cmd *cobra.Command, v any, cols []column) error {
	out := cmd.OutOrStdout()

	switch cfg.Output.Format {
	case config.FormatJSON:
		return writeJSON(out, v)
	case config.FormatYAML:
		return writeYAML(out, v)
	}

	records, err := filter.ToRecords(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	t := newTable("FIELD", "VALUE")
	for _, c := range cols {
		value, _ := filter.Lookup(records[0], c.path)
		t.Row(c.header, formatCell(value))
	}
	_, err = fmt.Fprintln(out, t.Render())
	return err
}

func writeRecords(w io.Writer, format string, records []filter.Record, cols []column) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, records)
	case config.FormatYAML:
		return writeYAML(w, records)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	t := newTable(headers...)
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			value, _ := filter.Lookup(r, c.path)
			row[i] = formatCell(value)
		}
		t.Row(row...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML goes through JSON first so YAML keys match the API field names
// rather than Go field names.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func formatCell(v any) string {
	var s string
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		s = value
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(value)
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = formatCell(item)
		}
		s = strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			s = fmt.Sprint(value)
		} else {
			s = string(raw)
		}
	}

	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > maxCellWidth {
		s = string(r[:maxCellWidth-1]) + "…"
	}
	return s
}
