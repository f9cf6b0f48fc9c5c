package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/clientele/sheets"
)

var (
	spreadsheetFlag string

	valuesHeader     bool
	valuesRender     string
	valuesInput      string
	valuesJSON       string
	valuesInsertRows bool
)

// sheetsCmd groups the Google Sheets commands
var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Google Sheets spreadsheets and values",
}

var sheetsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the tabs of a spreadsheet",
	Args:  cobra.NoArgs,
	RunE:  runSheetsGet,
}

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Read and write cell values",
}

var valuesGetCmd = &cobra.Command{
	Use:   "get <range>",
	Short: "Read a range, e.g. 'Sheet1!A1:D20'",
	Long: `Read a range. Rows become records keyed by column letter, or by the
first row's values with --header, so they can be filtered:

  clientele sheets values get 'Orders!A:F' --header --filter 'Status == "open"'`,
	Args: cobra.ExactArgs(1),
	RunE: runValuesGet,
}

var valuesAppendCmd = &cobra.Command{
	Use:   "append <range>",
	Short: "Append rows after the table found in a range",
	Long: `Append rows given as a JSON array of arrays, e.g. '[["2024-05-01", 12.5]]',
with --values or on standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runValuesAppend,
}

var valuesClearCmd = &cobra.Command{
	Use:   "clear <range>",
	Short: "Clear the values of a range, keeping formatting",
	Args:  cobra.ExactArgs(1),
	RunE:  runValuesClear,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
	sheetsCmd.PersistentFlags().StringVarP(&spreadsheetFlag, "spreadsheet", "s", "", "spreadsheet ID (default from sheets.spreadsheet_id)")

	sheetsCmd.AddCommand(sheetsGetCmd, valuesCmd)
	valuesCmd.AddCommand(valuesGetCmd, valuesAppendCmd, valuesClearCmd)

	valuesGetCmd.Flags().BoolVar(&valuesHeader, "header", false, "use the first row as field names")
	valuesGetCmd.Flags().StringVar(&valuesRender, "render", string(sheets.ValueRenderFormatted), "FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA")

	valuesAppendCmd.Flags().StringVar(&valuesInput, "input", string(sheets.ValueInputRaw), "RAW or USER_ENTERED")
	valuesAppendCmd.Flags().StringVar(&valuesJSON, "values", "", "rows as a JSON array of arrays (default: read from stdin)")
	valuesAppendCmd.Flags().BoolVar(&valuesInsertRows, "insert-rows", false, "insert new rows instead of overwriting cells below the table")
}

func spreadsheetID() (string, error) {
	if spreadsheetFlag != "" {
		return spreadsheetFlag, nil
	}
	if cfg.Sheets.SpreadsheetID != "" {
		return cfg.Sheets.SpreadsheetID, nil
	}
	return "", fmt.Errorf("no spreadsheet given: use --spreadsheet or set sheets.spreadsheet_id")
}

func runSheetsGet(cmd *cobra.Command, args []string) error {
	id, err := spreadsheetID()
	if err != nil {
		return err
	}
	client, err := newSheetsClient(cmd.Context())
	if err != nil {
		return err
	}

	ss, err := client.Get(cmd.Context(), id, nil)
	if err != nil {
		return err
	}
	logger.Info().Str("title", ss.Properties.Title).Str("url", ss.SpreadsheetURL).Int("sheets", len(ss.Sheets)).Msg("Spreadsheet")

	return renderList(cmd, ss.Sheets, columns(
		"ID", "properties.sheetId",
		"TITLE", "properties.title",
		"INDEX", "properties.index",
		"TYPE", "properties.sheetType",
		"ROWS", "properties.gridProperties.rowCount",
		"COLUMNS", "properties.gridProperties.columnCount",
	))
}

func runValuesGet(cmd *cobra.Command, args []string) error {
	id, err := spreadsheetID()
	if err != nil {
		return err
	}
	render := sheets.ValueRenderOption(valuesRender)
	if !render.Known() {
		return fmt.Errorf("invalid --render %q", valuesRender)
	}
	client, err := newSheetsClient(cmd.Context())
	if err != nil {
		return err
	}

	vr, err := client.GetValues(cmd.Context(), id, args[0], &sheets.GetValuesOptions{
		MajorDimension:    sheets.DimensionRows,
		ValueRenderOption: render,
	})
	if err != nil {
		return err
	}

	records, cols := rowsToRecords(vr.Values, valuesHeader)
	return renderList(cmd, records, cols)
}

// rowsToRecords keys each cell by column letter, or by the header row's
// text when header is set. Blank or repeated headers fall back to the
// column letter, suffixed with _2, _3 ... if a header already took it.
func rowsToRecords(rows [][]any, header bool) ([]map[string]any, []column) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	keys := make([]string, width)
	used := make(map[string]bool, width)
	if header && len(rows) > 0 {
		for i, cell := range rows[0] {
			name := strings.TrimSpace(formatCell(cell))
			if name == "" || used[name] {
				continue
			}
			used[name] = true
			keys[i] = name
		}
		rows = rows[1:]
	}
	for i := range keys {
		if keys[i] != "" {
			continue
		}
		letter := sheets.ColumnName(i + 1)
		key := letter
		for n := 2; used[key]; n++ {
			key = fmt.Sprintf("%s_%d", letter, n)
		}
		used[key] = true
		keys[i] = key
	}

	records := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]any, width)
		for i, key := range keys {
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = nil
			}
		}
		records = append(records, rec)
	}

	cols := make([]column, width)
	for i, key := range keys {
		cols[i] = column{header: key, path: key}
	}
	return records, cols
}

func runValuesAppend(cmd *cobra.Command, args []string) error {
	id, err := spreadsheetID()
	if err != nil {
		return err
	}
	input := sheets.ValueInputOption(valuesInput)
	if !input.Known() {
		return fmt.Errorf("invalid --input %q", valuesInput)
	}

	raw := []byte(valuesJSON)
	if !cmd.Flags().Changed("values") {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read rows from stdin: %w", err)
		}
	}
	var rows [][]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("rows must be a JSON array of arrays: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows to append")
	}

	client, err := newSheetsClient(cmd.Context())
	if err != nil {
		return err
	}

	opts := &sheets.AppendOptions{
		WriteOptions:     sheets.WriteOptions{ValueInputOption: input},
		InsertDataOption: sheets.InsertDataOverwrite,
	}
	if valuesInsertRows {
		opts.InsertDataOption = sheets.InsertDataInsertRows
	}

	resp, err := client.AppendValues(cmd.Context(), id, &sheets.ValueRange{
		Range:          args[0],
		MajorDimension: sheets.DimensionRows,
		Values:         rows,
	}, opts)
	if err != nil {
		return err
	}

	return renderItem(cmd, resp, columns(
		"TABLE", "tableRange",
		"UPDATED RANGE", "updates.updatedRange",
		"ROWS", "updates.updatedRows",
		"CELLS", "updates.updatedCells",
	))
}

func runValuesClear(cmd *cobra.Command, args []string) error {
	id, err := spreadsheetID()
	if err != nil {
		return err
	}
	client, err := newSheetsClient(cmd.Context())
	if err != nil {
		return err
	}

	resp, err := client.ClearValues(cmd.Context(), id, args[0])
	if err != nil {
		return err
	}
	logger.Info().Str("range", resp.ClearedRange).Msg("Range cleared")
	return nil
}
