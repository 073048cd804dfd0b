package store

import (
	"time"
)

// NormalizeTimestamp converts the timestamp shapes seen in persisted
// documents into canonical epoch milliseconds.
//
// Documents written by different app versions carry different shapes:
// Firestore-style {seconds, nanoseconds} maps, RFC3339 strings, raw epoch
// millisecond numbers, or decoded time.Time values. Normalizing here means
// the core only ever sees one representation.
//
// The second return is false when the value has no recognizable shape.
func NormalizeTimestamp(v any) (int64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		return t.UnixMilli(), true
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		// JSON numbers decode as float64.
		return int64(t), true
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UnixMilli(), true
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed.UnixMilli(), true
		}
		return 0, false
	case map[string]any:
		// Firestore timestamp documents decode as {"seconds": n, "nanoseconds": n}.
		seconds, ok := asInt64(t["seconds"])
		if !ok {
			return 0, false
		}
		nanos, _ := asInt64(t["nanoseconds"])
		return seconds*1000 + nanos/int64(time.Millisecond), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
