package models

import "time"

// Payload values round-trip through JSON when the replica persists them, so
// numbers may come back as float64 and timestamps as RFC 3339 strings. The
// accessors below absorb both shapes.

func fieldString(r Record, name string) string {
	if v, ok := r.Field(name).(string); ok {
		return v
	}
	return ""
}

func fieldFloat(r Record, name string) float64 {
	switch v := r.Field(name).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func fieldTime(r Record, name string) time.Time {
	switch v := r.Field(name).(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
