package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedServer(t *testing.T, pages []string) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			page, _ = strconv.Atoi(p)
		} else {
			assert.Equal(t, "completed", r.URL.Query().Get("status"), "first request carries the caller's query")
		}
		if page < len(pages) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/runs?page=%d>; rel="next", <%s/runs?page=%d>; rel="last"`,
				server.URL, page+1, server.URL, len(pages)))
		}
		w.Write([]byte(pages[page-1]))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetAllPages(t *testing.T) {
	server := linkedServer(t, []string{
		`{"total_count":3,"workflow_runs":[{"id":1},{"id":2}]}`,
		`{"total_count":3,"workflow_runs":[]}`,
		`{"total_count":3,"workflow_runs":[{"id":3}]}`,
	})

	client, err := New(server.URL)
	require.NoError(t, err)

	all, err := GetAllPages(context.Background(), client, "/runs", NewQuery().String("status", "completed"), Field[widget]("workflow_runs"))
	require.NoError(t, err)

	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestPageIteratorNext(t *testing.T) {
	server := linkedServer(t, []string{
		`[{"id":1}]`,
		`[]`,
	})

	client, err := New(server.URL)
	require.NoError(t, err)

	it := Pages(client, "/runs", NewQuery().String("status", "completed"), Items[widget]())
	ctx := context.Background()

	page, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = it.Next(ctx)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)

	page, err = it.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestGetAllPagesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = GetAllPages(context.Background(), client, "/runs", nil, Items[widget]())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGetAllOffsetPages(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "1700000000", r.URL.Query().Get("start_time"))

		switch r.URL.Query().Get("offset") {
		case "0":
			w.Write([]byte(`[{"id":1},{"id":2}]`))
		case "2":
			w.Write([]byte(`[{"id":3}]`))
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	q := NewQuery().Int64("start_time", 1700000000)
	all, err := GetAllOffsetPages(context.Background(), client, "/v3/suppression/bounces", q, 2, Items[widget]())
	require.NoError(t, err)

	assert.Len(t, all, 3)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, q.Len(), "caller query must not be modified")
}

func TestGetAllOffsetPagesInvalidLimit(t *testing.T) {
	client, err := New("https://api.example.com")
	require.NoError(t, err)

	_, err = GetAllOffsetPages(context.Background(), client, "/x", nil, 0, Items[widget]())
	require.Error(t, err)
}

func TestFieldExtractor(t *testing.T) {
	extract := Field[widget]("result")

	items, err := extract([]byte(`{"result":null}`))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = extract([]byte(`{"other":[]}`))
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = extract([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestGetAllPagesForeignLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<https://elsewhere.example.com/runs?page=2>; rel="next"`)
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	client, err := New(server.URL, WithBearerToken("secret"))
	require.NoError(t, err)

	_, err = GetAllPages(context.Background(), client, "/runs", nil, Items[widget]())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForeignHost)
}
