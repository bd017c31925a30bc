package service_test

import (
	"testing"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
)

func TestRunDoctorCleanStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if _, err := service.CreateLogEntry(db, service.CreateLogEntryInput{
		LoggedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.Local),
		Calories: floatPtr(500),
	}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	report, err := service.RunDoctor(db, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("fresh store should be clean: %+v", report)
	}
	if report.TotalEntries != 1 || report.SchemaVersion != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
}

func TestRunDoctorFlagsBadRows(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	// Rows written by other tools can bypass service validation.
	if _, err := db.Exec(`INSERT INTO log_entries(logged_at, calories) VALUES('not-a-timestamp', 100)`); err != nil {
		t.Fatalf("insert bad row: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO log_entries(logged_at, calories) VALUES('2099-01-01T08:00:00Z', 100)`); err != nil {
		t.Fatalf("insert future row: %v", err)
	}

	report, err := service.RunDoctor(db, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.InvalidTimestamps != 1 {
		t.Fatalf("expected 1 invalid timestamp, got %d", report.InvalidTimestamps)
	}
	if report.FutureDatedEntries != 1 {
		t.Fatalf("expected 1 future-dated entry, got %d", report.FutureDatedEntries)
	}
	if report.Clean() {
		t.Fatalf("store with invalid timestamps must not be clean")
	}
}
