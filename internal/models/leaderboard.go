package models

// LeaderboardEntry is one ranked member
type LeaderboardEntry struct {
	// Rank is 1-based; members with equal points share a rank
	Rank int

	// UserID is the Discord user ID of the member
	UserID string

	// Points is the member's point total
	Points int

	// TotalStudyTime is the member's study time in minutes
	TotalStudyTime int
}

// Leaderboard represents the current standings in a server
type Leaderboard struct {
	// GuildID is the Discord server
	GuildID string

	// Entries are ordered by points, highest first
	Entries []*LeaderboardEntry
}
