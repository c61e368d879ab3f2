package models

import "time"

// Feed post types.
const (
	PostNote             = "note"
	PostCatch            = "catch"
	PostGearReminder     = "gear-reminder"
	PostTournamentUpdate = "tournament-update"
)

// ValidPostType reports whether t is one of the four feed post types.
func ValidPostType(t string) bool {
	switch t {
	case PostNote, PostCatch, PostGearReminder, PostTournamentUpdate:
		return true
	}
	return false
}

// CatchDetails describes a logged catch attached to a "catch" post.
type CatchDetails struct {
	Species  string  `json:"species"`
	Weight   float64 `json:"weight"`
	Length   float64 `json:"length"`
	Lure     string  `json:"lure"`
	Location string  `json:"location"`
}

// GearReminder is the structured payload of a "gear-reminder" post.
type GearReminder struct {
	Items    []string `json:"items"`
	Priority string   `json:"priority"` // low, medium, high
}

// Comment is a single reply under a feed post.
type Comment struct {
	ID         string    `json:"id"`
	AuthorUID  string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Post is a single social-timeline entry, optionally tagged to a tournament.
// Posts are never edited or deleted; likes only grow.
type Post struct {
	ID           string        `json:"id"`
	AuthorUID    string        `json:"author_id"`
	AuthorName   string        `json:"author_name"`
	Content      string        `json:"content"`
	Type         string        `json:"type"`
	Timestamp    time.Time     `json:"timestamp"`
	TournamentID string        `json:"tournament_id,omitempty"`
	Images       []string      `json:"images,omitempty"`
	Likes        int           `json:"likes"`
	Comments     []Comment     `json:"comments"`
	CatchDetails *CatchDetails `json:"catch_details,omitempty"`
	GearReminder *GearReminder `json:"gear_reminder,omitempty"`
}
