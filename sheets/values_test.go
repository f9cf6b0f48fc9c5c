package sheets

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValuesQuery(t *testing.T) {
	client := newTestClient(t, routes{
		"GET /v4/spreadsheets/abc/values/'My Sheet'!A:C": func(w http.ResponseWriter, req *http.Request) {
			assert.Contains(t, req.URL.EscapedPath(), "%27My%20Sheet%27%21A:C")
			q := req.URL.Query()
			assert.Equal(t, "COLUMNS", q.Get("majorDimension"))
			assert.Equal(t, "UNFORMATTED_VALUE", q.Get("valueRenderOption"))
			assert.False(t, q.Has("dateTimeRenderOption"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"range":          "'My Sheet'!A1:C3",
				"majorDimension": "COLUMNS",
				"values":         [][]any{{1, 2, 3}, {true, false}},
			})
		},
	})

	vr, err := client.GetValues(context.Background(), "abc", A1Range("My Sheet", "A", "C"), &GetValuesOptions{
		MajorDimension:    DimensionColumns,
		ValueRenderOption: ValueRenderUnformatted,
	})
	require.NoError(t, err)
	assert.Equal(t, DimensionColumns, vr.MajorDimension)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, vr.Values[0])
	assert.Equal(t, []any{true, false}, vr.Values[1])
}

func TestWriteValues(t *testing.T) {
	client := newTestClient(t, routes{
		"PUT /v4/spreadsheets/abc/values/Sheet1!A1": func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "RAW", req.URL.Query().Get("valueInputOption"))
			assert.False(t, req.URL.Query().Has("includeValuesInResponse"))
			body := decodeBody(t, req)
			assert.Equal(t, []any{[]any{"=1+1"}}, body["values"])
			writeJSON(t, w, http.StatusOK, map[string]any{
				"spreadsheetId": "abc", "updatedRange": "Sheet1!A1", "updatedCells": 1,
			})
		},
		"POST /v4/spreadsheets/abc/values/Sheet1!A:B:append": func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			assert.Equal(t, "USER_ENTERED", q.Get("valueInputOption"))
			assert.Equal(t, "INSERT_ROWS", q.Get("insertDataOption"))
			assert.Equal(t, "true", q.Get("includeValuesInResponse"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"spreadsheetId": "abc",
				"tableRange":    "Sheet1!A1:B4",
				"updates":       map[string]any{"updatedRange": "Sheet1!A5:B5", "updatedRows": 1},
			})
		},
		"POST /v4/spreadsheets/abc/values/Sheet1!A2:B:clear": func(w http.ResponseWriter, req *http.Request) {
			assert.Empty(t, decodeBody(t, req))
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc", "clearedRange": "Sheet1!A2:B1000"})
		},
	})
	ctx := context.Background()

	_, err := client.UpdateValues(ctx, "abc", &ValueRange{Values: [][]any{{"x"}}}, nil)
	require.Error(t, err)

	updated, err := client.UpdateValues(ctx, "abc", &ValueRange{Range: "Sheet1!A1", Values: [][]any{{"=1+1"}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.UpdatedCells)

	appended, err := client.AppendValues(ctx, "abc", &ValueRange{
		Range:  "Sheet1!A:B",
		Values: [][]any{{"ada", 10}},
	}, &AppendOptions{
		WriteOptions:     WriteOptions{ValueInputOption: ValueInputUserEntered, IncludeValuesInResponse: true},
		InsertDataOption: InsertDataInsertRows,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!A5:B5", appended.Updates.UpdatedRange)

	cleared, err := client.ClearValues(ctx, "abc", "Sheet1!A2:B")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!A2:B1000", cleared.ClearedRange)
}

func TestAppendValuesDefaults(t *testing.T) {
	client := newTestClient(t, routes{
		"POST /v4/spreadsheets/abc/values/Log:append": func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			assert.Equal(t, "RAW", q.Get("valueInputOption"))
			assert.False(t, q.Has("insertDataOption"))
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc"})
		},
	})

	_, err := client.AppendValues(context.Background(), "abc", &ValueRange{Range: "Log", Values: [][]any{{"x"}}}, nil)
	require.NoError(t, err)
}

func TestBatchValues(t *testing.T) {
	client := newTestClient(t, routes{
		"GET /v4/spreadsheets/abc/values:batchGet": func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, []string{"A1:A2", "Sheet2!B:B"}, req.URL.Query()["ranges"])
			writeJSON(t, w, http.StatusOK, map[string]any{
				"spreadsheetId": "abc",
				"valueRanges": []any{
					map[string]any{"range": "Sheet1!A1:A2", "values": [][]any{{"a"}, {"b"}}},
					map[string]any{"range": "Sheet2!B1:B1000"},
				},
			})
		},
		"POST /v4/spreadsheets/abc/values:batchUpdate": func(w http.ResponseWriter, req *http.Request) {
			body := decodeBody(t, req)
			assert.Equal(t, "RAW", body["valueInputOption"])
			assert.Len(t, body["data"], 2)
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc", "totalUpdatedCells": 3})
		},
		"POST /v4/spreadsheets/abc/values:batchClear": func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, []any{"A1", "B2"}, decodeBody(t, req)["ranges"])
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc", "clearedRanges": []string{"Sheet1!A1", "Sheet1!B2"}})
		},
		"POST /v4/spreadsheets/abc/values:batchGetByDataFilter": func(w http.ResponseWriter, req *http.Request) {
			body := decodeBody(t, req)
			assert.Equal(t, "FORMULA", body["valueRenderOption"])
			writeJSON(t, w, http.StatusOK, map[string]any{
				"spreadsheetId": "abc",
				"valueRanges": []any{map[string]any{
					"valueRange":  map[string]any{"range": "Sheet1!A1", "values": [][]any{{"=NOW()"}}},
					"dataFilters": []any{map[string]any{"a1Range": "A1"}},
				}},
			})
		},
		"POST /v4/spreadsheets/abc/values:batchUpdateByDataFilter": func(w http.ResponseWriter, req *http.Request) {
			body := decodeBody(t, req)
			assert.Equal(t, "USER_ENTERED", body["valueInputOption"])
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc", "totalUpdatedCells": 1})
		},
		"POST /v4/spreadsheets/abc/values:batchClearByDataFilter": func(w http.ResponseWriter, req *http.Request) {
			assert.Len(t, decodeBody(t, req)["dataFilters"], 1)
			writeJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "abc", "clearedRanges": []string{"Sheet1!C:C"}})
		},
	})
	ctx := context.Background()

	got, err := client.BatchGetValues(ctx, "abc", []string{"A1:A2", "Sheet2!B:B"}, nil)
	require.NoError(t, err)
	require.Len(t, got.ValueRanges, 2)
	assert.Empty(t, got.ValueRanges[1].Values)

	updated, err := client.BatchUpdateValues(ctx, "abc", &BatchUpdateValuesRequest{Data: []ValueRange{
		{Range: "A1", Values: [][]any{{1}}},
		{Range: "B1:B2", Values: [][]any{{2}, {3}}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.TotalUpdatedCells)

	cleared, err := client.BatchClearValues(ctx, "abc", []string{"A1", "B2"})
	require.NoError(t, err)
	assert.Len(t, cleared.ClearedRanges, 2)

	matched, err := client.BatchGetValuesByDataFilter(ctx, "abc", &BatchGetValuesByDataFilterRequest{
		DataFilters:       []DataFilter{{A1Range: "A1"}},
		ValueRenderOption: ValueRenderFormula,
	})
	require.NoError(t, err)
	require.Len(t, matched.ValueRanges, 1)
	assert.Equal(t, "=NOW()", matched.ValueRanges[0].ValueRange.Values[0][0])

	_, err = client.BatchUpdateValuesByDataFilter(ctx, "abc", &BatchUpdateValuesByDataFilterRequest{
		ValueInputOption: ValueInputUserEntered,
		Data:             []DataFilterValueRange{{DataFilter: DataFilter{A1Range: "C1"}, Values: [][]any{{"=TODAY()"}}}},
	})
	require.NoError(t, err)

	_, err = client.BatchClearValuesByDataFilter(ctx, "abc", []DataFilter{{A1Range: "C:C"}})
	require.NoError(t, err)

	_, err = client.BatchUpdateValues(ctx, "abc", nil)
	assert.Error(t, err)
}
