package user_stats

import "github.com/KirkDiggler/studyhall/internal/models"

// CreditUserInput contains parameters for crediting a settled session
type CreditUserInput struct {
	UserID  string
	GuildID string

	// Points to add
	Points int

	// StudyTime to add, in minutes
	StudyTime int
}

// CreditUserOutput contains the member's totals after the credit
type CreditUserOutput struct {
	Stats *models.UserStats
}

// AwardPointsInput contains parameters for a raw point award
type AwardPointsInput struct {
	UserID  string
	GuildID string
	Points  int
}

// AwardPointsOutput contains the member's point total after the award
type AwardPointsOutput struct {
	Points int
}

// GetUserStatsInput contains parameters for retrieving a member's totals
type GetUserStatsInput struct {
	UserID  string
	GuildID string
}

// GetTopUsersInput contains parameters for retrieving the top of the leaderboard
type GetTopUsersInput struct {
	GuildID string
	Limit   int
}

// GetTopUsersOutput contains members ordered by points, highest first
type GetTopUsersOutput struct {
	Stats []*models.UserStats
}

// GetUserRankInput contains parameters for ranking a member
type GetUserRankInput struct {
	UserID  string
	GuildID string
}

// GetUserRankOutput contains a member's rank
type GetUserRankOutput struct {
	Rank int
}
