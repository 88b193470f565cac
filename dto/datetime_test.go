package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2025-04-01T09:30:00Z"`, time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)},
		{"date only", `"2025-04-01"`, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"date and time", `"2025-04-01 09:30:00"`, time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateTime
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !d.Time.Equal(tt.want) {
				t.Errorf("parsed %v, want %v", d.Time, tt.want)
			}
		})
	}
}

func TestDateTimeUnmarshalRejectsGarbage(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
		t.Fatal("expected an error for an unrecognized format")
	}
}

func TestDateTimeTimePtr(t *testing.T) {
	var nilDate *DateTime
	if nilDate.TimePtr() != nil {
		t.Error("nil receiver must yield nil")
	}

	var zero DateTime
	if zero.TimePtr() != nil {
		t.Error("zero value must yield nil")
	}

	set := DateTime{Time: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	if got := set.TimePtr(); got == nil || !got.Equal(set.Time) {
		t.Errorf("TimePtr = %v, want the parsed time", got)
	}
}

func TestDateTimeTimeOr(t *testing.T) {
	fallback := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var nilDate *DateTime
	if got := nilDate.TimeOr(fallback); !got.Equal(fallback) {
		t.Errorf("nil receiver: got %v, want fallback", got)
	}

	set := DateTime{Time: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	if got := set.TimeOr(fallback); !got.Equal(set.Time) {
		t.Errorf("set value: got %v, want the parsed time", got)
	}
}
