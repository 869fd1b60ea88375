package models

import (
	"time"
)

// UserStats is a member's running totals within one server
type UserStats struct {
	// UserID is the Discord user ID
	UserID string

	// GuildID is the Discord server the totals belong to
	GuildID string

	// Points is the lifetime point total
	Points int

	// TotalStudyTime is the lifetime study time in minutes
	TotalStudyTime int

	// StudyStreak counts settled sessions the member took part in
	StudyStreak int

	// UpdatedAt is when the totals last changed
	UpdatedAt time.Time
}
