// Package models contains the domain structures of the club: users,
// tournaments, feed posts, gear checklist items and practice logs.
// The structures are shared by the business logic and the storage layer.
package models

import "time"

// Roles a club member can hold. Coach is the privileged role allowed to
// create and delete accounts.
const (
	RoleMember  = "member"
	RoleCaptain = "captain"
	RoleCoach   = "coach"
)

// ValidRole reports whether role is one of the three club roles.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleCaptain || role == RoleCoach
}

// User represents a registered club member.
type User struct {
	UID          string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	Avatar       string    `json:"avatar,omitempty"`
	Role         string    `json:"role"`
	JoinDate     time.Time `json:"join_date"`
}
