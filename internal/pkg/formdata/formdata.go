// Package formdata decodes the loosely typed multipart form fields the admin
// UI submits. List fields may arrive either as a JSON-encoded array or as a
// plain comma list depending on the form control, so parsing is a two-stage
// contract: structured parse first, delimiter split as the fallback.
package formdata

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// ParseList decodes a list field. Stage one treats the input as a JSON array
// of strings; stage two splits on commas, trimming whitespace and dropping
// empty entries. An empty input yields an empty list.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseBool reads checkbox-style form booleans: only the literal "true"
// (any case) is true.
func ParseBool(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

// dateLayouts are tried in order when parsing date fields. The admin UI
// sends either a bare date from <input type="date"> or a full timestamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01",
}

// ParseDate parses a date field. Returns the zero time and false when the
// input matches no accepted layout.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Has reports whether the form carries the named text field at all. Update
// handlers use this to distinguish "omitted" from "set to empty".
func Has(values url.Values, key string) bool {
	_, ok := values[key]
	return ok
}
