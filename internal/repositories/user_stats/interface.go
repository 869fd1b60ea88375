package user_stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/studyhall/internal/repositories/user_stats Repository

import (
	"context"

	"github.com/KirkDiggler/studyhall/internal/models"
)

// Repository defines the points ledger: per-(user, server) points, study time and streak
type Repository interface {
	// CreditUser adds points and study time and bumps the streak, creating the row on first use
	CreditUser(ctx context.Context, input *CreditUserInput) (*CreditUserOutput, error)

	// AwardPoints adds raw points without touching study time or streak
	AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error)

	// GetUserStats retrieves a member's totals
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*models.UserStats, error)

	// GetTopUsers retrieves the highest scoring members of a server
	GetTopUsers(ctx context.Context, input *GetTopUsersInput) (*GetTopUsersOutput, error)

	// GetUserRank returns a member's 1-based rank, shared with anyone on equal points
	GetUserRank(ctx context.Context, input *GetUserRankInput) (*GetUserRankOutput, error)
}
