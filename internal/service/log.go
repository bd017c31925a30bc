package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/model"
)

type CreateLogEntryInput struct {
	Name     string
	LoggedAt time.Time
	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	Notes    string
}

type ListLogEntriesFilter struct {
	Date     string
	FromDate string
	ToDate   string
	Limit    int
}

// CreateLogEntry persists one meal log. Timestamps are stored in UTC;
// omitted macros persist as NULL rather than zero.
func CreateLogEntry(db *sql.DB, in CreateLogEntryInput) (int64, error) {
	if in.LoggedAt.IsZero() {
		return 0, fmt.Errorf("log entry timestamp is required")
	}
	for _, check := range []struct {
		name  string
		value *float64
	}{
		{"calories", in.Calories},
		{"protein", in.ProteinG},
		{"carbs", in.CarbsG},
		{"fat", in.FatG},
	} {
		if err := validateNonNegative(check.name, check.value); err != nil {
			return 0, err
		}
	}

	res, err := db.Exec(`
INSERT INTO log_entries(name, logged_at, calories, protein_g, carbs_g, fat_g, notes)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, strings.TrimSpace(in.Name), in.LoggedAt.UTC().Format(time.RFC3339), in.Calories, in.ProteinG, in.CarbsG, in.FatG, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("insert log entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted log entry id: %w", err)
	}
	return id, nil
}

// ListLogEntries returns entries for a local date or local date range,
// oldest first.
func ListLogEntries(db *sql.DB, f ListLogEntriesFilter) ([]model.LogEntry, error) {
	query := `
SELECT id, IFNULL(name, ''), logged_at, calories, protein_g, carbs_g, fat_g, IFNULL(notes, '')
FROM log_entries
WHERE 1=1`
	args := make([]any, 0)

	switch {
	case strings.TrimSpace(f.Date) != "":
		day, err := parseDay("--date", f.Date)
		if err != nil {
			return nil, err
		}
		start, end := utcWindow(day, day)
		query += ` AND logged_at >= ? AND logged_at < ?`
		args = append(args, start.Format(time.RFC3339), end.Format(time.RFC3339))
	case strings.TrimSpace(f.FromDate) != "" && strings.TrimSpace(f.ToDate) != "":
		from, err := parseDay("--from", f.FromDate)
		if err != nil {
			return nil, err
		}
		to, err := parseDay("--to", f.ToDate)
		if err != nil {
			return nil, err
		}
		start, end := utcWindow(from, to)
		query += ` AND logged_at >= ? AND logged_at < ?`
		args = append(args, start.Format(time.RFC3339), end.Format(time.RFC3339))
	case strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "":
		return nil, fmt.Errorf("--from and --to must be used together")
	}

	query += ` ORDER BY logged_at ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.LogEntry, 0)
	for rows.Next() {
		e, err := scanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log entries: %w", err)
	}
	return entries, nil
}

// FetchLogs is the engine-facing read contract: all entries whose
// timestamp falls inside the inclusive local calendar range.
func FetchLogs(db *sql.DB, from, to time.Time) ([]engine.LogEntry, error) {
	start, end := utcWindow(from, to)
	rows, err := db.Query(`
SELECT logged_at, calories, protein_g, carbs_g, fat_g
FROM log_entries
WHERE logged_at >= ? AND logged_at < ?
ORDER BY logged_at ASC
`, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	logs := make([]engine.LogEntry, 0)
	for rows.Next() {
		var loggedAt string
		var calories, protein, carbs, fat sql.NullFloat64
		if err := rows.Scan(&loggedAt, &calories, &protein, &carbs, &fat); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		at, err := time.Parse(time.RFC3339, loggedAt)
		if err != nil {
			return nil, fmt.Errorf("parse log timestamp %q: %w", loggedAt, err)
		}
		logs = append(logs, engine.LogEntry{
			LoggedAt: at,
			Calories: nullableFloat(calories),
			Protein:  nullableFloat(protein),
			Carbs:    nullableFloat(carbs),
			Fat:      nullableFloat(fat),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}
	return logs, nil
}

func scanLogEntry(rows *sql.Rows) (model.LogEntry, error) {
	var e model.LogEntry
	var loggedAt string
	var calories, protein, carbs, fat sql.NullFloat64
	if err := rows.Scan(&e.ID, &e.Name, &loggedAt, &calories, &protein, &carbs, &fat, &e.Notes); err != nil {
		return e, fmt.Errorf("scan log entry: %w", err)
	}
	at, err := time.Parse(time.RFC3339, loggedAt)
	if err != nil {
		return e, fmt.Errorf("parse log entry timestamp %q: %w", loggedAt, err)
	}
	e.LoggedAt = at
	e.Calories = nullableFloat(calories)
	e.ProteinG = nullableFloat(protein)
	e.CarbsG = nullableFloat(carbs)
	e.FatG = nullableFloat(fat)
	return e, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
