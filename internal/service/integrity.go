package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/db"
)

// DoctorReport summarizes store-level integrity problems. The engine
// assumes callers validated their data; doctor is where that
// validation lives.
type DoctorReport struct {
	SchemaVersion       int `json:"schema_version"`
	TotalEntries        int `json:"total_entries"`
	InvalidTimestamps   int `json:"invalid_timestamps"`
	NegativeNutrients   int `json:"negative_nutrients"`
	FutureDatedEntries  int `json:"future_dated_entries"`
	ProfilesWithoutGoal int `json:"profiles_without_goal"`
}

func (r DoctorReport) Clean() bool {
	return r.InvalidTimestamps == 0 && r.NegativeNutrients == 0
}

// RunDoctor checks the log and profile stores for rows the analytics
// layer would reject or misread.
func RunDoctor(sqldb *sql.DB, now time.Time) (*DoctorReport, error) {
	report := &DoctorReport{}

	version, err := db.SchemaVersion(sqldb)
	if err != nil {
		return nil, err
	}
	report.SchemaVersion = version

	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM log_entries`).Scan(&report.TotalEntries); err != nil {
		return nil, fmt.Errorf("count log entries: %w", err)
	}

	rows, err := sqldb.Query(`SELECT logged_at FROM log_entries`)
	if err != nil {
		return nil, fmt.Errorf("query log timestamps: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var loggedAt string
		if err := rows.Scan(&loggedAt); err != nil {
			return nil, fmt.Errorf("scan log timestamp: %w", err)
		}
		at, err := time.Parse(time.RFC3339, loggedAt)
		if err != nil {
			report.InvalidTimestamps++
			continue
		}
		if at.After(now) {
			report.FutureDatedEntries++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log timestamps: %w", err)
	}

	if err := sqldb.QueryRow(`
SELECT COUNT(*) FROM log_entries
WHERE (calories IS NOT NULL AND calories < 0)
   OR (protein_g IS NOT NULL AND protein_g < 0)
   OR (carbs_g IS NOT NULL AND carbs_g < 0)
   OR (fat_g IS NOT NULL AND fat_g < 0)
`).Scan(&report.NegativeNutrients); err != nil {
		return nil, fmt.Errorf("count negative nutrients: %w", err)
	}

	if err := sqldb.QueryRow(`
SELECT COUNT(*) FROM profiles
WHERE calorie_target = 0 AND protein_target_g = 0 AND carb_target_g = 0 AND fat_target_g = 0
`).Scan(&report.ProfilesWithoutGoal); err != nil {
		return nil, fmt.Errorf("count goalless profiles: %w", err)
	}

	return report, nil
}
