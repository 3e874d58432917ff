// Package payload provides defensive accessors over untyped JSON documents
// (the result of decoding into an `any`). Upstream providers give no shape
// guarantees, so every accessor degrades to a zero value instead of failing.
package payload

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// Field returns node[key] when node is a JSON object, otherwise nil.
func Field(node any, key string) any {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}

// Path walks nested object keys with Field.
func Path(node any, keys ...string) any {
	for _, k := range keys {
		node = Field(node, k)
	}
	return node
}

// List returns node as a JSON array, or nil when it is anything else.
func List(node any) []any {
	l, _ := node.([]any)
	return l
}

// Index returns list[i] when in range, otherwise nil.
func Index(list []any, i int) any {
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}

// First returns the first element of node when node is a non-empty array.
func First(node any) any {
	return Index(List(node), 0)
}

// String returns node when it is a JSON string.
func String(node any) (string, bool) {
	s, ok := node.(string)
	return s, ok
}

// Float coerces node into a finite float64. JSON numbers and numeric strings
// are accepted; null, booleans, NaN and infinities are not.
func Float(node any) (float64, bool) {
	var f float64
	switch v := node.(type) {
	case float64:
		f = v
	case json.Number:
		p, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int coerces node into an int64. Fractional numbers are truncated toward
// zero; strings must hold a base-10 integer.
func Int(node any) (int64, bool) {
	switch v := node.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		return Int(toFloat(v))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func toFloat(n json.Number) any {
	f, err := n.Float64()
	if err != nil {
		return nil
	}
	return f
}

// Decode reads one JSON document from r into an untyped tree. Numbers are
// kept as json.Number so large volumes and epoch seconds survive intact.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
