package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// helperFunctions are available in every expression, next to expr's own
// builtins (lower, upper, now, len, ...) and operators (contains,
// startsWith, endsWith, matches).
func helperFunctions() []expr.Option {
	return []expr.Option{
		expr.Function("parseTime", func(params ...any) (any, error) {
			return toTime(params[0])
		}, new(func(any) time.Time)),
		expr.Function("daysSince", func(params ...any) (any, error) {
			t, err := toTime(params[0])
			if err != nil {
				return 0, err
			}
			return int(time.Since(t).Hours() / 24), nil
		}, new(func(any) int)),
		expr.Function("hoursSince", func(params ...any) (any, error) {
			t, err := toTime(params[0])
			if err != nil {
				return 0.0, err
			}
			return time.Since(t).Hours(), nil
		}, new(func(any) float64)),
		expr.Function("hoursAgo", func(params ...any) (any, error) {
			return time.Now().Add(-time.Duration(params[0].(int)) * time.Hour), nil
		}, new(func(int) time.Time)),
		expr.Function("daysAgo", func(params ...any) (any, error) {
			return time.Now().AddDate(0, 0, -params[0].(int)), nil
		}, new(func(int) time.Time)),
		expr.Function("monthsAgo", func(params ...any) (any, error) {
			return time.Now().AddDate(0, -params[0].(int), 0), nil
		}, new(func(int) time.Time)),
		expr.Function("yearsAgo", func(params ...any) (any, error) {
			return time.Now().AddDate(-params[0].(int), 0, 0), nil
		}, new(func(int) time.Time)),
		expr.Function("containsFold", func(params ...any) (any, error) {
			return strings.Contains(strings.ToLower(toString(params[0])), strings.ToLower(toString(params[1]))), nil
		}, new(func(any, any) bool)),
		expr.Function("equalFold", func(params ...any) (any, error) {
			return strings.EqualFold(toString(params[0]), toString(params[1])), nil
		}, new(func(any, any) bool)),
		expr.Function("lookup", func(params ...any) (any, error) {
			v, _ := Lookup(params[0], params[1].(string))
			return v, nil
		}, new(func(any, string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, ok := Lookup(params[0], params[1].(string))
			return ok, nil
		}, new(func(any, string) bool)),
	}
}

// toTime accepts time.Time values, the timestamp strings the APIs return,
// and Unix seconds as decoded from JSON numbers.
func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, errors.New("nil time")
		}
		return *t, nil
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized time %q", t)
	case float64:
		return time.Unix(int64(t), 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case nil:
		return time.Time{}, errors.New("missing time value")
	}
	return time.Time{}, fmt.Errorf("cannot use %T as a time", v)
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// Lookup walks a dotted path through nested objects and arrays, e.g.
// "head_commit.author.name" or "labels.0".
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return v, v != nil
	}

	cur := v
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
