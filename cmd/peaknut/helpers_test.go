package peaknut

import (
	"testing"
	"time"
)

func TestResolveWeekRangeValid(t *testing.T) {
	start, end, err := resolveWeekRange("2026-W07")
	if err != nil {
		t.Fatalf("resolve week: %v", err)
	}
	if start.Weekday() != time.Monday {
		t.Fatalf("ISO weeks start Monday, got %s", start.Weekday())
	}
	if !end.Equal(start.AddDate(0, 0, 6)) {
		t.Fatalf("expected a 7-day span, got %s to %s", start, end)
	}
}

func TestResolveWeekRangeRejectsMalformed(t *testing.T) {
	for _, week := range []string{"2026-W1", "2026-W00", "2021-W53", "W07-2026"} {
		if _, _, err := resolveWeekRange(week); err == nil {
			t.Fatalf("expected error for %q", week)
		}
	}
}

func TestResolveWeekRangeFiftyThreeWeekYear(t *testing.T) {
	// 2020 has 53 ISO weeks.
	if _, _, err := resolveWeekRange("2020-W53"); err != nil {
		t.Fatalf("2020-W53 is valid: %v", err)
	}
}

func TestResolveMonthRange(t *testing.T) {
	start, end, err := resolveMonthRange("2026-02")
	if err != nil {
		t.Fatalf("resolve month: %v", err)
	}
	if start.Day() != 1 || start.Month() != time.February {
		t.Fatalf("unexpected month start %s", start)
	}
	if end.Day() != 28 {
		t.Fatalf("February 2026 ends on the 28th, got %s", end)
	}
	if _, _, err := resolveMonthRange("02/2026"); err == nil {
		t.Fatalf("expected error for malformed month")
	}
}

func TestParseDateTimeOrNow(t *testing.T) {
	got, err := parseDateTimeOrNow("2026-02-10", "08:30")
	if err != nil {
		t.Fatalf("parse date/time: %v", err)
	}
	want := time.Date(2026, 2, 10, 8, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if _, err := parseDateTimeOrNow("", "08:30"); err == nil {
		t.Fatalf("time without date must be rejected")
	}
	if _, err := parseDateTimeOrNow("10-02-2026", ""); err == nil {
		t.Fatalf("malformed date must be rejected")
	}
}
