package event_controller

import (
	"fmt"
	"strings"
	"time"
)

var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseExpiry accepts RFC3339 or the browser's datetime-local format, read in
// server local time. An empty string means no deadline.
func parseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range expiryLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("invalid expiry date %q", raw)
}
