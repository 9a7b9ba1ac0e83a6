package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"homestead-calendar/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("farm", -5*3600))

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("expected the date in its own location, got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 3, 5, 14, 30, 0, 0, time.FixedZone("farm", -5*3600))

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-03-05T14:30:00"` {
		t.Errorf("expected wall-clock datetime, got %s", b)
	}
}
