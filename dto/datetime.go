package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// DateTime accepts both RFC 3339 timestamps and plain yyyy-mm-dd dates in
// request payloads.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date format: %q", raw)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// TimePtr returns the parsed time, or nil when the value was absent or empty
func (d *DateTime) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// TimeOr returns the parsed time, or fallback when the value was absent or empty
func (d *DateTime) TimeOr(fallback time.Time) time.Time {
	if d == nil || d.IsZero() {
		return fallback
	}
	return d.Time
}
