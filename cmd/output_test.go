package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/clientele/config"
	"github.com/s0up4200/clientele/filter"
)

func testRecords() []filter.Record {
	return []filter.Record{
		{"id": float64(1), "name": "Build", "actor": map[string]any{"login": "octocat"}},
		{"id": float64(2), "name": "Deploy", "actor": map[string]any{"login": "hubot"}},
	}
}

func TestWriteRecords(t *testing.T) {
	cols := columns("ID", "id", "NAME", "name", "ACTOR", "actor.login")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, config.FormatJSON, testRecords(), cols))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Deploy", got[1]["name"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, config.FormatYAML, testRecords(), cols))

		var got []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "octocat", got[0]["actor"].(map[string]any)["login"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, config.FormatTable, testRecords(), cols))

		out := buf.String()
		for _, want := range []string{"ID", "NAME", "ACTOR", "Build", "Deploy", "octocat", "hubot"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, config.FormatTable, nil, cols))
		assert.Equal(t, "No results.\n", buf.String())
	})

	t.Run("empty json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, config.FormatJSON, []filter.Record{}, cols))
		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "main", want: "main"},
		{name: "integer float", value: float64(30433642), want: "30433642"},
		{name: "fraction", value: 12.5, want: "12.5"},
		{name: "bool", value: true, want: "true"},
		{name: "list", value: []any{"linux", "x64"}, want: "linux, x64"},
		{name: "object", value: map[string]any{"a": float64(1)}, want: `{"a":1}`},
		{name: "newlines", value: "line one\nline two", want: "line one line two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.value))
		})
	}

	t.Run("truncated", func(t *testing.T) {
		got := formatCell(strings.Repeat("x", 100))
		assert.Len(t, []rune(got), maxCellWidth)
		assert.True(t, strings.HasSuffix(got, "…"))
	})
}

func TestColumns(t *testing.T) {
	cols := columns("ID", "id", "NAME", "name", "DANGLING")
	assert.Equal(t, []column{{header: "ID", path: "id"}, {header: "NAME", path: "name"}}, cols)
}

func TestRowsToRecords(t *testing.T) {
	rows := [][]any{
		{"Date", "Amount", "", "Amount"},
		{"2024-05-01", "12.5", "x"},
		{"2024-05-02"},
	}

	t.Run("column letters", func(t *testing.T) {
		records, cols := rowsToRecords(rows, false)
		require.Len(t, records, 3)
		require.Len(t, cols, 4)
		assert.Equal(t, "A", cols[0].header)
		assert.Equal(t, "D", cols[3].header)
		assert.Equal(t, "Date", records[0]["A"])
		assert.Nil(t, records[2]["B"])
	})

	t.Run("header row", func(t *testing.T) {
		records, cols := rowsToRecords(rows, true)
		require.Len(t, records, 2)

		headers := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.header
		}
		assert.Equal(t, []string{"Date", "Amount", "C", "D"}, headers)
		assert.Equal(t, "12.5", records[0]["Amount"])
		assert.Equal(t, "x", records[0]["C"])
		assert.Nil(t, records[1]["Amount"])
	})

	t.Run("header matching a column letter", func(t *testing.T) {
		records, cols := rowsToRecords([][]any{
			{"B", "", "B"},
			{"first", "second", "third"},
		}, true)
		require.Len(t, records, 1)

		headers := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.header
		}
		assert.Equal(t, []string{"B", "B_2", "C"}, headers)
		assert.Equal(t, map[string]any{"B": "first", "B_2": "second", "C": "third"}, records[0])
	})

	t.Run("empty", func(t *testing.T) {
		records, cols := rowsToRecords(nil, true)
		assert.Empty(t, records)
		assert.Empty(t, cols)
	})
}
