package api

import "time"

// Layouts accepted for created_at. The reference backend writes Python's
// datetime.isoformat(), which has no zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// parseTimestamp returns nil when value is empty or in no known layout.
// Values without an offset are read as local time, so a server in a zone ahead
// of the client yields times in the future; card labels clamp those to now.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return &t
		}
	}
	return nil
}
