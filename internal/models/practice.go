package models

import "time"

// PracticeConditions records weather on the water during a practice session.
type PracticeConditions struct {
	Weather     string   `json:"weather"`
	Temperature float64  `json:"temperature"`
	WindSpeed   float64  `json:"wind_speed"`
	WaterTemp   *float64 `json:"water_temp,omitempty"`
}

// PracticeCatch summarizes catches of one species during a session.
type PracticeCatch struct {
	Species   string   `json:"species"`
	Count     int      `json:"count"`
	AvgWeight *float64 `json:"avg_weight,omitempty"`
	Lures     []string `json:"lures"`
}

// PracticeLog is one practice session on a lake, owned by the member
// who logged it.
type PracticeLog struct {
	ID         string             `json:"id"`
	OwnerUID   string             `json:"-"`
	Date       time.Time          `json:"date"`
	Lake       string             `json:"lake"`
	Duration   int                `json:"duration"` // minutes
	Conditions PracticeConditions `json:"conditions"`
	Techniques []string           `json:"techniques"`
	Catches    []PracticeCatch    `json:"catches"`
	Notes      string             `json:"notes,omitempty"`
	Rating     int                `json:"rating"` // 1..5
}
