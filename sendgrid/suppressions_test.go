package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/clientele/rest"
)

func TestListSuppressions(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v3/suppression/bounces", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "1700000000", q.Get("start_time"))
		assert.Equal(t, "ada", q.Get("email"))
		assert.Equal(t, "50", q.Get("limit"))
		writeJSON(t, w, http.StatusOK, []any{
			map[string]any{"email": "ada@example.com", "created": 1700000100, "reason": "550 5.1.1", "status": "5.1.1"},
		})
	})

	client := newTestClient(t, r)

	bounces, err := client.ListBounces(context.Background(), &SuppressionListOptions{
		ListOptions: ListOptions{Limit: 50},
		StartTime:   time.Unix(1700000000, 0),
		Email:       "ada",
	})
	require.NoError(t, err)
	require.Len(t, bounces, 1)
	assert.Equal(t, "550 5.1.1", bounces[0].Reason)
	assert.Equal(t, time.Unix(1700000100, 0).UTC(), bounces[0].CreatedAt())
}

func TestListAllSuppressionsPagesByOffset(t *testing.T) {
	const total = allLimit + 3

	var (
		mu      sync.Mutex
		offsets []string
	)

	r := chi.NewRouter()
	r.Get("/v3/suppression/blocks", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, strconv.Itoa(allLimit), q.Get("limit"))
		assert.Equal(t, "example.com", q.Get("email"))

		offset, err := strconv.Atoi(q.Get("offset"))
		require.NoError(t, err)
		mu.Lock()
		offsets = append(offsets, q.Get("offset"))
		mu.Unlock()

		page := []any{}
		for i := offset; i < total && i < offset+allLimit; i++ {
			page = append(page, map[string]any{"email": fmt.Sprintf("u%d@example.com", i)})
		}
		writeJSON(t, w, http.StatusOK, page)
	})

	client := newTestClient(t, r)

	blocks, err := client.ListAllBlocks(context.Background(), &SuppressionListOptions{
		ListOptions: ListOptions{Limit: 7, Offset: 99},
		Email:       "example.com",
	})
	require.NoError(t, err)
	assert.Len(t, blocks, total)
	assert.Equal(t, "u0@example.com", blocks[0].Email)
	assert.Equal(t, []string{"0", strconv.Itoa(allLimit)}, offsets)
}

func TestDeleteSuppressions(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, s)
	}

	r := chi.NewRouter()
	r.Delete("/v3/suppression/{list}", func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		record(fmt.Sprintf("%s %v", chi.URLParam(req, "list"), body))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Delete("/v3/suppression/{list}/{email}", func(w http.ResponseWriter, req *http.Request) {
		record(chi.URLParam(req, "list") + " " + chi.URLParam(req, "email"))
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	require.NoError(t, client.DeleteBounce(ctx, "a@example.com"))
	require.NoError(t, client.DeleteAllSpamReports(ctx))
	require.NoError(t, client.DeleteSuppressions(ctx, SuppressionInvalidEmails, []string{"x@example.com"}))
	require.Error(t, client.DeleteSuppressions(ctx, SuppressionBlocks, nil))

	assert.Equal(t, []string{
		"bounces a@example.com",
		"spam_reports map[delete_all:true]",
		"invalid_emails map[emails:[x@example.com]]",
	}, calls)
}

func TestLookupSuppressions(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v3/suppression/{list}/{email}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "ada@example.com", chi.URLParam(req, "email"))
		switch chi.URLParam(req, "list") {
		case "bounces":
			writeJSON(t, w, http.StatusOK, []any{map[string]any{"email": "ada@example.com", "reason": "mailbox full"}})
		case "spam_reports":
			writeJSON(t, w, http.StatusNotFound, map[string]any{"errors": []any{map[string]any{"message": "not found"}}})
		default:
			writeJSON(t, w, http.StatusOK, []any{})
		}
	})

	client := newTestClient(t, r)

	lookup, err := client.LookupSuppressions(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.True(t, lookup.Suppressed())
	require.Len(t, lookup.Lists, 1)
	assert.Equal(t, "mailbox full", lookup.Lists[SuppressionBounces][0].Reason)

	_, err = client.LookupSuppressions(context.Background(), "")
	assert.Error(t, err)
}

func TestLookupSuppressionsError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v3/suppression/{list}/{email}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "list") == "blocks" {
			writeJSON(t, w, http.StatusForbidden, map[string]any{"errors": []any{map[string]any{"message": "access forbidden"}}})
			return
		}
		writeJSON(t, w, http.StatusOK, []any{})
	})

	client := newTestClient(t, r)

	_, err := client.LookupSuppressions(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "looking up blocks")
	assert.ErrorIs(t, err, rest.ErrUnauthorized)
}

func TestUnsubscribes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v3/suppression/unsubscribes", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, []any{map[string]any{"email": "u@example.com", "created": 1}})
	})
	r.Post("/v3/asm/suppressions/global", func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		writeJSON(t, w, http.StatusCreated, body)
	})
	r.Delete("/v3/asm/suppressions/global/{email}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "u@example.com", chi.URLParam(req, "email"))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/v3/asm/groups", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, []string{"1", "2"}, req.URL.Query()["id"])
		writeJSON(t, w, http.StatusOK, []any{
			map[string]any{"id": 1, "name": "Newsletter"},
			map[string]any{"id": 2, "name": "Alerts", "is_default": true},
		})
	})
	r.Post("/v3/asm/groups", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, map[string]any{"name": "Digest", "description": "weekly", "is_default": false}, decodeBody(t, req))
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 3, "name": "Digest", "description": "weekly"})
	})
	r.Patch("/v3/asm/groups/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 3, "name": "Weekly digest"})
	})
	r.Get("/v3/asm/groups/{id}/suppressions", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, []string{"a@example.com"})
	})
	r.Post("/v3/asm/groups/{id}/suppressions", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusCreated, decodeBody(t, req))
	})
	r.Delete("/v3/asm/groups/{id}/suppressions/{email}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "3", chi.URLParam(req, "id"))
		w.WriteHeader(http.StatusNoContent)
	})
	r.Delete("/v3/asm/groups/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, r)
	ctx := context.Background()

	unsubs, err := client.ListGlobalUnsubscribes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, unsubs, 1)

	added, err := client.AddGlobalUnsubscribes(ctx, []string{"u@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u@example.com"}, added)
	require.NoError(t, client.DeleteGlobalUnsubscribe(ctx, "u@example.com"))

	groups, err := client.ListGroups(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[1].IsDefault)

	group, err := client.CreateGroup(ctx, Group{Name: "Digest", Description: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), group.ID)

	updated, err := client.UpdateGroup(ctx, 3, Group{Name: "Weekly digest"})
	require.NoError(t, err)
	assert.Equal(t, "Weekly digest", updated.Name)

	emails, err := client.ListGroupSuppressions(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com"}, emails)

	added, err = client.AddGroupSuppressions(ctx, 3, []string{"b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b@example.com"}, added)

	require.NoError(t, client.DeleteGroupSuppression(ctx, 3, "b@example.com"))
	require.NoError(t, client.DeleteGroup(ctx, 3))
}
