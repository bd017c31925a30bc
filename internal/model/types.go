package model

import "time"

// LogEntry is a persisted meal log row. Nutrient fields are nil when
// the user never recorded them; a nil macro and an explicit zero are
// different facts.
type LogEntry struct {
	ID       int64
	Name     string
	LoggedAt time.Time
	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	Notes    string
}

// Profile is a set of daily targets effective from a date. Zero means
// no goal for that nutrient.
type Profile struct {
	ID             int64
	CalorieTarget  float64
	ProteinTargetG float64
	CarbTargetG    float64
	FatTargetG     float64
	EffectiveDate  string
	CreatedAt      time.Time
}
