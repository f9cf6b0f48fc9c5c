package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Extractor pulls the items of one page out of a response body.
type Extractor[T any] func(body []byte) ([]T, error)

// Items decodes a body that is a bare JSON array.
func Items[T any]() Extractor[T] {
	return func(body []byte) ([]T, error) {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decoding page: %w", err)
		}
		return items, nil
	}
}

// Field decodes the array stored under one key of a JSON object, as in
// {"total_count": 2, "workflow_runs": [...]}.
func Field[T any](name string) Extractor[T] {
	return func(body []byte) ([]T, error) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decoding page: %w", err)
		}
		raw, ok := envelope[name]
		if !ok || string(raw) == "null" {
			return []T{}, nil
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decoding page field %q: %w", name, err)
		}
		return items, nil
	}
}

// PageIterator walks a collection that is paginated with Link headers.
//
// Usage:
//
//	it := rest.Pages(client, "/repos/o/r/actions/runs", q, rest.Field[Run]("workflow_runs"))
//	for {
//	    page, err := it.Next(ctx)
//	    if err != nil { return err }
//	    if page == nil { break }
//	    ...
//	}
type PageIterator[T any] struct {
	client  *Client
	next    string
	query   *Query
	extract Extractor[T]
	done    bool
}

// Pages returns an iterator starting at path. query applies to the first
// request only; later pages follow the next link verbatim.
func Pages[T any](c *Client, path string, query *Query, extract Extractor[T]) *PageIterator[T] {
	return &PageIterator[T]{
		client:  c,
		next:    path,
		query:   query,
		extract: extract,
	}
}

// Next fetches the next page. It returns nil, nil once the last page has
// been consumed. An empty page that still links onward yields an empty,
// non-nil slice.
func (it *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.done {
		return nil, nil
	}

	resp, err := it.client.Do(ctx, http.MethodGet, it.next, it.query, nil, nil)
	if err != nil {
		return nil, err
	}

	items, err := it.extract(resp.Body)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	it.query = nil
	it.next = resp.NextURL()
	if it.next == "" {
		it.done = true
	}

	return items, nil
}

// Collect drains the iterator and concatenates every page.
func (it *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		page, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		all = append(all, page...)
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

// GetAllPages follows Link rel="next" headers from path until the last page
// and returns the concatenated items.
func GetAllPages[T any](ctx context.Context, c *Client, path string, query *Query, extract Extractor[T]) ([]T, error) {
	return Pages(c, path, query, extract).Collect(ctx)
}

// GetAllOffsetPages pages through a limit/offset collection. It stops when
// a page holds fewer than limit items.
func GetAllOffsetPages[T any](ctx context.Context, c *Client, path string, query *Query, limit int, extract Extractor[T]) ([]T, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("page limit must be positive, got %d", limit)
	}

	all := []T{}
	for offset := 0; ; offset += limit {
		q := query.Clone().
			Set("limit", strconv.Itoa(limit)).
			Set("offset", strconv.Itoa(offset))

		resp, err := c.Do(ctx, http.MethodGet, path, q, nil, nil)
		if err != nil {
			return nil, err
		}

		items, err := extract(resp.Body)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if len(items) < limit {
			return all, nil
		}
	}
}
