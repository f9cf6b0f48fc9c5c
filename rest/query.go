package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Query assembles a query string from optional arguments. Each typed
// setter skips values equal to their type's zero value, so endpoint
// functions can pass every argument through unconditionally.
//
// The zero Query is ready to use. A nil *Query may be read and encoded,
// yielding nothing, but not written to.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Set adds key=value even when value is empty.
func (q *Query) Set(key, value string) *Query {
	q.set(key, value)
	return q
}

// String adds key=value when value is not empty.
func (q *Query) String(key, value string) *Query {
	if value != "" {
		q.set(key, value)
	}
	return q
}

// Int adds key=v when v is not zero.
func (q *Query) Int(key string, v int) *Query {
	if v != 0 {
		q.set(key, strconv.Itoa(v))
	}
	return q
}

// Int64 adds key=v when v is not zero.
func (q *Query) Int64(key string, v int64) *Query {
	if v != 0 {
		q.set(key, strconv.FormatInt(v, 10))
	}
	return q
}

// Bool adds key=true when v is true.
func (q *Query) Bool(key string, v bool) *Query {
	if v {
		q.set(key, "true")
	}
	return q
}

// Time adds t in RFC 3339 (UTC) when t is not the zero time.
func (q *Query) Time(key string, t time.Time) *Query {
	if !t.IsZero() {
		q.set(key, t.UTC().Format(time.RFC3339))
	}
	return q
}

// Unix adds t as seconds since the epoch when t is not the zero time.
func (q *Query) Unix(key string, t time.Time) *Query {
	if !t.IsZero() {
		q.set(key, strconv.FormatInt(t.Unix(), 10))
	}
	return q
}

// Date adds d as YYYY-MM-DD when d is not the zero date.
func (q *Query) Date(key string, d openapi_types.Date) *Query {
	if !d.Time.IsZero() {
		q.set(key, d.Format(openapi_types.DateFormat))
	}
	return q
}

// Strings adds one key=value pair per non-empty element.
func (q *Query) Strings(key string, vs []string) *Query {
	for _, v := range vs {
		if v != "" {
			q.add(key, v)
		}
	}
	return q
}

// CSV adds the non-empty elements joined by commas.
func (q *Query) CSV(key string, vs []string) *Query {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		q.set(key, strings.Join(parts, ","))
	}
	return q
}

func (q *Query) set(key, value string) {
	if q.values == nil {
		q.values = url.Values{}
	}
	q.values.Set(key, value)
}

func (q *Query) add(key, value string) {
	if q.values == nil {
		q.values = url.Values{}
	}
	q.values.Add(key, value)
}

// Clone returns an independent copy. Cloning a nil query yields an empty one.
func (q *Query) Clone() *Query {
	clone := NewQuery()
	for key, vs := range q.Values() {
		clone.values[key] = vs
	}
	return clone
}

// Values returns a copy of the assembled values.
func (q *Query) Values() url.Values {
	out := url.Values{}
	if q == nil {
		return out
	}
	for key, vs := range q.values {
		out[key] = append([]string(nil), vs...)
	}
	return out
}

// Len reports how many keys are set.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.values)
}

// Encode renders the query in URL-encoded form, sorted by key.
func (q *Query) Encode() string {
	return q.Values().Encode()
}
