package models

import "time"

// Tournament statuses.
const (
	TournamentUpcoming  = "upcoming"
	TournamentActive    = "active"
	TournamentCompleted = "completed"
)

// Tournament is a scheduled competitive event. Tournaments are reference
// data seeded by migration and never modified through the API.
type Tournament struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Lake        string    `json:"lake"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}
