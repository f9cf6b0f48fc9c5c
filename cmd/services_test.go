package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeRequest(t *testing.T, req *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
	return body
}

func sheetsServer(t *testing.T, cleared *atomic.Int32) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "AIza-test", req.URL.Query().Get("key"))
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/v4/spreadsheets/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "sheet123", chi.URLParam(req, "id"))
		respondJSON(t, w, http.StatusOK, map[string]any{
			"spreadsheetId":  "sheet123",
			"spreadsheetUrl": "https://docs.google.com/spreadsheets/d/sheet123",
			"properties":     map[string]any{"title": "Orders"},
			"sheets": []map[string]any{
				{"properties": map[string]any{"sheetId": 0, "title": "Orders", "index": 0, "sheetType": "GRID"}},
				{"properties": map[string]any{"sheetId": 7, "title": "Archive", "index": 1, "sheetType": "GRID"}},
			},
		})
	})
	r.Get("/v4/spreadsheets/{id}/values/{range}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Orders", chi.URLParam(req, "range"))
		assert.Equal(t, "ROWS", req.URL.Query().Get("majorDimension"))
		assert.Equal(t, "FORMATTED_VALUE", req.URL.Query().Get("valueRenderOption"))
		respondJSON(t, w, http.StatusOK, map[string]any{
			"range":          "Orders!A1:B3",
			"majorDimension": "ROWS",
			"values":         [][]any{{"Name", "Status"}, {"a", "open"}, {"b", "closed"}},
		})
	})
	r.Post("/v4/spreadsheets/{id}/values/{range}:append", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Orders", chi.URLParam(req, "range"))
		assert.Equal(t, "USER_ENTERED", req.URL.Query().Get("valueInputOption"))
		assert.Equal(t, "INSERT_ROWS", req.URL.Query().Get("insertDataOption"))

		body := decodeRequest(t, req)
		assert.Equal(t, []any{[]any{"c", "open"}}, body["values"])

		respondJSON(t, w, http.StatusOK, map[string]any{
			"spreadsheetId": "sheet123",
			"tableRange":    "Orders!A1:B3",
			"updates": map[string]any{
				"updatedRange": "Orders!A4:B4",
				"updatedRows":  1,
				"updatedCells": 2,
			},
		})
	})
	r.Post("/v4/spreadsheets/{id}/values/{range}:clear", func(w http.ResponseWriter, req *http.Request) {
		cleared.Add(1)
		respondJSON(t, w, http.StatusOK, map[string]any{"spreadsheetId": "sheet123", "clearedRange": "Orders!A1:Z1000"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetsCommands(t *testing.T) {
	var cleared atomic.Int32
	srv := sheetsServer(t, &cleared)
	cfgPath := writeConfig(t, fmt.Sprintf(`sheets:
  api_key: AIza-test
  base_url: %s
  spreadsheet_id: sheet123
logging:
  level: error
`, srv.URL))

	t.Run("get", func(t *testing.T) {
		out, err := execute(t, "sheets", "get", "--config", cfgPath, "-o", "json", "--filter", `properties.title != "Orders"`)
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Archive", got[0]["properties"].(map[string]any)["title"])
	})

	t.Run("values get with header", func(t *testing.T) {
		out, err := execute(t, "sheets", "values", "get", "Orders", "--config", cfgPath,
			"--header", "-o", "json", "--filter", `Status == "open"`)
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []map[string]any{{"Name": "a", "Status": "open"}}, got)
	})

	t.Run("values get by column letter", func(t *testing.T) {
		out, err := execute(t, "sheets", "values", "get", "Orders", "-s", "sheet123", "--config", cfgPath)
		require.NoError(t, err)
		for _, want := range []string{"A", "B", "Name", "closed"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("values append", func(t *testing.T) {
		out, err := execute(t, "sheets", "values", "append", "Orders", "--config", cfgPath,
			"--values", `[["c","open"]]`, "--input", "USER_ENTERED", "--insert-rows", "-o", "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Orders!A1:B3", got["tableRange"])
	})

	t.Run("values append rejects bad rows", func(t *testing.T) {
		_, err := execute(t, "sheets", "values", "append", "Orders", "--config", cfgPath, "--values", `{"a":1}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JSON array of arrays")
	})

	t.Run("values clear", func(t *testing.T) {
		_, err := execute(t, "sheets", "values", "clear", "Orders", "--config", cfgPath)
		require.NoError(t, err)
		assert.Equal(t, int32(1), cleared.Load())
	})
}

func TestSheetsCredentialsRequired(t *testing.T) {
	cfgPath := writeConfig(t, "sheets:\n  spreadsheet_id: sheet123\n")

	_, err := execute(t, "sheets", "get", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheets credentials missing")
}

func sendgridServer(t *testing.T, sent *atomic.Pointer[map[string]any]) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "Bearer SG.test", req.Header.Get("Authorization"))
			next.ServeHTTP(w, req)
		})
	})
	r.Post("/v3/mail/send", func(w http.ResponseWriter, req *http.Request) {
		body := decodeRequest(t, req)
		sent.Store(&body)
		w.Header().Set("X-Message-Id", "msg-1")
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/v3/stats", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "2024-05-01", q.Get("start_date"))
		assert.Equal(t, "2024-05-07", q.Get("end_date"))
		assert.Equal(t, "week", q.Get("aggregated_by"))
		respondJSON(t, w, http.StatusOK, []map[string]any{
			{"date": "2024-05-01", "stats": []map[string]any{{"metrics": map[string]any{"requests": 10, "delivered": 9}}}},
		})
	})
	r.Get("/v3/suppression/bounces", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "100", req.URL.Query().Get("limit"))
		respondJSON(t, w, http.StatusOK, []map[string]any{
			{"email": "ada@example.com", "created": 1714557600, "reason": "550 5.1.1 unknown user", "status": "5.1.1"},
			{"email": "bob@example.com", "created": 1714561200, "reason": "452 mailbox full", "status": "4.2.2"},
		})
	})
	r.Get("/v3/suppression/{list}/{email}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "ada@example.com", chi.URLParam(req, "email"))
		if chi.URLParam(req, "list") != "bounces" {
			respondJSON(t, w, http.StatusNotFound, map[string]any{"errors": []map[string]any{{"message": "not found"}}})
			return
		}
		respondJSON(t, w, http.StatusOK, []map[string]any{
			{"email": "ada@example.com", "created": 1714557600, "reason": "550 5.1.1 unknown user"},
		})
	})
	r.Get("/v3/templates", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "legacy,dynamic", req.URL.Query().Get("generations"))
		respondJSON(t, w, http.StatusOK, map[string]any{
			"result": []map[string]any{
				{"id": "d-123", "name": "Welcome", "generation": "dynamic", "updated_at": "2024-05-01 10:00:00"},
				{"id": "tpl-1", "name": "Receipt", "generation": "legacy"},
			},
			"_metadata": map[string]any{"count": 2},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSendGridCommands(t *testing.T) {
	var sent atomic.Pointer[map[string]any]
	srv := sendgridServer(t, &sent)
	cfgPath := writeConfig(t, fmt.Sprintf(`sendgrid:
  api_key: SG.test
  base_url: %s
  from: noreply@example.com
logging:
  level: error
`, srv.URL))

	t.Run("send", func(t *testing.T) {
		_, err := execute(t, "sendgrid", "send", "--config", cfgPath,
			"--to", "ada@example.com", "--template-id", "d-123", "--data", "name=Ada", "--sandbox")
		require.NoError(t, err)

		require.NotNil(t, sent.Load())
		body := *sent.Load()
		assert.Equal(t, "noreply@example.com", body["from"].(map[string]any)["email"])
		assert.Equal(t, "d-123", body["template_id"])

		p := body["personalizations"].([]any)[0].(map[string]any)
		assert.Equal(t, "ada@example.com", p["to"].([]any)[0].(map[string]any)["email"])
		assert.Equal(t, map[string]any{"name": "Ada"}, p["dynamic_template_data"])

		settings := body["mail_settings"].(map[string]any)
		assert.Equal(t, true, settings["sandbox_mode"].(map[string]any)["enable"])
	})

	t.Run("send needs a body", func(t *testing.T) {
		_, err := execute(t, "sendgrid", "send", "--config", cfgPath, "--to", "ada@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to send")
	})

	t.Run("stats", func(t *testing.T) {
		out, err := execute(t, "sendgrid", "stats", "--config", cfgPath,
			"--start", "2024-05-01", "--end", "2024-05-07", "--aggregated-by", "week", "-o", "json")
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "2024-05-01", got[0]["date"])
	})

	t.Run("stats rejects bad dates", func(t *testing.T) {
		_, err := execute(t, "sendgrid", "stats", "--config", cfgPath, "--start", "05/01/2024")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
	})

	t.Run("suppressions lookup", func(t *testing.T) {
		out, err := execute(t, "sendgrid", "suppressions", "lookup", "ada@example.com", "--config", cfgPath, "-o", "json")
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "bounces", got[0]["list"])
		assert.Equal(t, "550 5.1.1 unknown user", got[0]["reason"])
	})

	t.Run("bounces list", func(t *testing.T) {
		out, err := execute(t, "sendgrid", "bounces", "list", "--config", cfgPath,
			"-o", "json", "--filter", `reason startsWith "550"`)
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "ada@example.com", got[0]["email"])
	})

	t.Run("templates list", func(t *testing.T) {
		out, err := execute(t, "sendgrid", "templates", "list", "--config", cfgPath)
		require.NoError(t, err)
		for _, want := range []string{"GENERATION", "Welcome", "Receipt", "d-123"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("templates list rejects unknown generation", func(t *testing.T) {
		_, err := execute(t, "sendgrid", "templates", "list", "--config", cfgPath, "--generations", "modern")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid generation")
	})
}
