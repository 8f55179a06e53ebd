package repository

import (
	"errors"
	"os"
	"time"
)

// ErrAlreadyExists is returned by in-memory stores on duplicate ids.
var ErrAlreadyExists = errors.New("item already exists")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// sortableTimeLayout is fixed-width so string comparison in key conditions
// and filters matches chronological order.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z"

func formatSortableTime(t time.Time) string {
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
