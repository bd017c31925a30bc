package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/model"
)

type SetProfileInput struct {
	CalorieTarget  float64
	ProteinTargetG float64
	CarbTargetG    float64
	FatTargetG     float64
	EffectiveDate  string
}

// SetProfile records daily targets effective from a date, replacing
// any earlier targets for the same date. A zero target means "no goal"
// for that nutrient.
func SetProfile(db *sql.DB, in SetProfileInput) error {
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"calories", in.CalorieTarget},
		{"protein", in.ProteinTargetG},
		{"carbs", in.CarbTargetG},
		{"fat", in.FatTargetG},
	} {
		if check.value < 0 {
			return fmt.Errorf("%s target must be >= 0", check.name)
		}
	}
	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	if in.EffectiveDate == "" {
		return fmt.Errorf("effective date is required")
	}
	if _, err := time.Parse(dayFormat, in.EffectiveDate); err != nil {
		return fmt.Errorf("invalid effective date %q (expected YYYY-MM-DD)", in.EffectiveDate)
	}

	_, err := db.Exec(`
INSERT INTO profiles(calorie_target, protein_target_g, carb_target_g, fat_target_g, effective_date)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  calorie_target=excluded.calorie_target,
  protein_target_g=excluded.protein_target_g,
  carb_target_g=excluded.carb_target_g,
  fat_target_g=excluded.fat_target_g
`, in.CalorieTarget, in.ProteinTargetG, in.CarbTargetG, in.FatTargetG, in.EffectiveDate)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// CurrentProfile returns the newest profile effective on or before the
// date, or nil when none exists yet.
func CurrentProfile(db *sql.DB, date string) (*model.Profile, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dayFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	var p model.Profile
	err := db.QueryRow(`
SELECT id, calorie_target, protein_target_g, carb_target_g, fat_target_g, effective_date, created_at
FROM profiles
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date).Scan(&p.ID, &p.CalorieTarget, &p.ProteinTargetG, &p.CarbTargetG, &p.FatTargetG, &p.EffectiveDate, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current profile for %s: %w", date, err)
	}
	return &p, nil
}

func ProfileHistory(db *sql.DB) ([]model.Profile, error) {
	rows, err := db.Query(`
SELECT id, calorie_target, protein_target_g, carb_target_g, fat_target_g, effective_date, created_at
FROM profiles
ORDER BY effective_date DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list profile history: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.CalorieTarget, &p.ProteinTargetG, &p.CarbTargetG, &p.FatTargetG, &p.EffectiveDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile history: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile history: %w", err)
	}
	return profiles, nil
}

// FetchProfile is the engine-facing read contract. No profile maps to
// the all-zero GoalProfile, which the engine treats as "no goals".
func FetchProfile(db *sql.DB, date string) (engine.GoalProfile, error) {
	p, err := CurrentProfile(db, date)
	if err != nil {
		return engine.GoalProfile{}, err
	}
	if p == nil {
		return engine.GoalProfile{}, nil
	}
	return engine.GoalProfile{
		CalorieTarget:  p.CalorieTarget,
		ProteinTargetG: p.ProteinTargetG,
		CarbTargetG:    p.CarbTargetG,
		FatTargetG:     p.FatTargetG,
	}, nil
}
