package occurrence_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/teambition/rrule-go"

	"homestead-calendar/internal/model"
	"homestead-calendar/internal/occurrence"
)

func window(first, last string) model.QueryWindow {
	f, _ := model.ParseDate(first)
	l, _ := model.ParseDate(last)
	return model.NewQueryWindow(f, l, time.UTC)
}

func def(anchor time.Time, r model.Recurrence) model.TaskDefinition {
	return model.TaskDefinition{
		ID:         "t1",
		ProjectID:  "p1",
		Title:      "Feed chickens",
		Anchor:     anchor,
		Recurrence: r,
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name      string
		def       model.TaskDefinition
		window    model.QueryWindow
		wantDates []string
	}{
		{
			name:      "One-off inside window",
			def:       def(time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC), model.RecurrenceNone),
			window:    window("2024-03-01", "2024-03-31"),
			wantDates: []string{"2024-03-14"},
		},
		{
			name:      "One-off outside window",
			def:       def(time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC), model.RecurrenceNone),
			window:    window("2024-03-01", "2024-03-31"),
			wantDates: nil,
		},
		{
			name:      "One-off on last day at 23:59",
			def:       def(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), model.RecurrenceNone),
			window:    window("2024-03-01", "2024-03-31"),
			wantDates: []string{"2024-03-31"},
		},
		{
			name:      "Weekly on Wednesday over two weeks",
			def:       def(time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC), model.RecurrenceWeekly),
			window:    window("2024-05-05", "2024-05-18"),
			wantDates: []string{"2024-05-08", "2024-05-15"},
		},
		{
			name:      "Monthly on the 31st never matches February",
			def:       def(time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC), model.RecurrenceMonthly),
			window:    window("2024-02-01", "2024-02-29"),
			wantDates: nil,
		},
		{
			name:      "Monthly on the 15th",
			def:       def(time.Date(2023, 11, 15, 8, 0, 0, 0, time.UTC), model.RecurrenceMonthly),
			window:    window("2024-01-28", "2024-03-02"),
			wantDates: []string{"2024-02-15"},
		},
		{
			name:      "Yearly on Feb 29 skips non-leap years",
			def:       def(time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), model.RecurrenceYearly),
			window:    window("2025-02-01", "2025-03-31"),
			wantDates: nil,
		},
		{
			name:      "Yearly on Feb 29 in a leap year",
			def:       def(time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), model.RecurrenceYearly),
			window:    window("2028-02-01", "2028-03-31"),
			wantDates: []string{"2028-02-29"},
		},
		{
			name:      "Yearly before the anchor year still matches",
			def:       def(time.Date(2030, 7, 4, 8, 0, 0, 0, time.UTC), model.RecurrenceYearly),
			window:    window("2024-07-01", "2024-07-07"),
			wantDates: []string{"2024-07-04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := occurrence.Expand(tt.def, tt.window)
			var dates []string
			for _, o := range got {
				dates = append(dates, o.Date.String())
			}
			if !reflect.DeepEqual(dates, tt.wantDates) {
				t.Errorf("Expand() dates = %v, want %v", dates, tt.wantDates)
			}
		})
	}
}

func TestExpandDailyCoversEveryDate(t *testing.T) {
	// Anchor is after the window: daily tasks have no lower bound.
	d := def(time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC), model.RecurrenceDaily)
	w := window("2024-03-01", "2024-03-31")

	first := occurrence.Expand(d, w)
	if len(first) != 31 {
		t.Fatalf("expected 31 occurrences, got %d", len(first))
	}
	for i, o := range first {
		want := w.First().AddDays(i)
		if o.Date != want {
			t.Fatalf("occurrence %d on %s, want %s", i, o.Date, want)
		}
		if !o.Recurring {
			t.Errorf("occurrence %d should be marked recurring", i)
		}
	}

	second := occurrence.Expand(d, w)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expand() is not idempotent")
	}
}

func TestExpandTimeOfDay(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 14, 30, 45, 0, time.UTC)

	t.Run("Timed", func(t *testing.T) {
		got := occurrence.Expand(def(anchor, model.RecurrenceWeekly), window("2024-03-08", "2024-03-08"))
		if len(got) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(got))
		}
		wantTOD := 14*time.Hour + 30*time.Minute + 45*time.Second
		if got[0].TimeOfDay != wantTOD {
			t.Errorf("TimeOfDay = %v, want %v", got[0].TimeOfDay, wantTOD)
		}
		wantStart := time.Date(2024, 3, 8, 14, 30, 45, 0, time.UTC)
		if !got[0].Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", got[0].Start, wantStart)
		}
	})

	t.Run("All day", func(t *testing.T) {
		d := def(anchor, model.RecurrenceNone)
		d.AllDay = true
		got := occurrence.Expand(d, window("2024-03-01", "2024-03-01"))
		if len(got) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(got))
		}
		if got[0].TimeOfDay != 0 || !got[0].AllDay {
			t.Errorf("unexpected all-day occurrence: %+v", got[0])
		}
		if !got[0].Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("all-day Start should be midnight, got %v", got[0].Start)
		}
	})

	t.Run("Keeps anchor location", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		// 23:30 local is the previous day in UTC; the local date wins.
		a := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
		got := occurrence.Expand(def(a, model.RecurrenceNone), window("2024-03-01", "2024-03-01"))
		if len(got) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(got))
		}
		if got[0].Start.Location() != loc {
			t.Errorf("expected occurrence in anchor location")
		}
	})
}

// Expand must agree with RFC 5545 semantics for every date on or after the
// anchor.
func TestExpandAgreesWithRRule(t *testing.T) {
	anchor := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	w := window("2023-01-31", "2025-12-31")

	freqs := map[model.Recurrence]rrule.Frequency{
		model.RecurrenceDaily:   rrule.DAILY,
		model.RecurrenceWeekly:  rrule.WEEKLY,
		model.RecurrenceMonthly: rrule.MONTHLY,
		model.RecurrenceYearly:  rrule.YEARLY,
	}

	for rec, freq := range freqs {
		t.Run(rec.String(), func(t *testing.T) {
			r, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: anchor})
			if err != nil {
				t.Fatalf("NewRRule: %v", err)
			}
			want := r.Between(w.Start, w.End, true)

			got := occurrence.Expand(def(anchor, rec), w)
			if len(got) != len(want) {
				t.Fatalf("got %d occurrences, rrule gives %d", len(got), len(want))
			}
			for i := range got {
				if got[i].Date != model.DateOf(want[i]) {
					t.Fatalf("occurrence %d: got %s, rrule gives %s", i, got[i].Date, model.DateOf(want[i]))
				}
			}
		})
	}
}

func TestRRule(t *testing.T) {
	anchor := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)

	if got := occurrence.RRule(def(anchor, model.RecurrenceNone)); got != "" {
		t.Errorf("RRule(none) = %q, want empty", got)
	}

	want := map[model.Recurrence]string{
		model.RecurrenceDaily:   "FREQ=DAILY",
		model.RecurrenceWeekly:  "FREQ=WEEKLY",
		model.RecurrenceMonthly: "FREQ=MONTHLY",
		model.RecurrenceYearly:  "FREQ=YEARLY",
	}
	for rec, prefix := range want {
		got := occurrence.RRule(def(anchor, rec))
		if !strings.HasPrefix(got, prefix) {
			t.Errorf("RRule(%s) = %q, want prefix %q", rec, got, prefix)
		}
	}
}
