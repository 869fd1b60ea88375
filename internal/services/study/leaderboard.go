package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/studyhall/internal/models"
	sessionRecordRepo "github.com/KirkDiggler/studyhall/internal/repositories/session_record"
	userStatsRepo "github.com/KirkDiggler/studyhall/internal/repositories/user_stats"
)

// GetLeaderboard returns a server's top members. Members on equal points share
// a rank and the next rank skips ahead (1, 2, 2, 4).
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.leaderboardSize
	}

	top, err := s.userStatsRepo.GetTopUsers(ctx, &userStatsRepo.GetTopUsersInput{
		GuildID: input.GuildID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(top.Stats))
	for i, stats := range top.Stats {
		rank := i + 1
		if i > 0 && stats.Points == entries[i-1].Points {
			rank = entries[i-1].Rank
		}

		entries = append(entries, &models.LeaderboardEntry{
			Rank:           rank,
			UserID:         stats.UserID,
			Points:         stats.Points,
			TotalStudyTime: stats.TotalStudyTime,
		})
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			GuildID: input.GuildID,
			Entries: entries,
		},
	}, nil
}

// GetUserStats returns a member's totals and rank
func (s *service) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	stats, err := s.userStatsRepo.GetUserStats(ctx, &userStatsRepo.GetUserStatsInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, userStatsRepo.ErrUserStatsNotFound) {
			return &GetUserStatsOutput{
				Stats: &models.UserStats{
					UserID:  input.UserID,
					GuildID: input.GuildID,
				},
			}, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	rank, err := s.userStatsRepo.GetUserRank(ctx, &userStatsRepo.GetUserRankInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user rank: %w", err)
	}

	return &GetUserStatsOutput{
		Stats: stats,
		Rank:  rank.Rank,
	}, nil
}

// SetTextChannel chooses where session notifications go in a server
func (s *service) SetTextChannel(ctx context.Context, input *SetTextChannelInput) (*SetTextChannelOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	settings := &models.GuildSettings{
		GuildID:       input.GuildID,
		TextChannelID: input.ChannelID,
		UpdatedAt:     s.clock.Now(),
	}

	if err := s.guildSettingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save guild settings: %w", err)
	}

	return &SetTextChannelOutput{
		Settings: settings,
	}, nil
}

// ListSessionHistory returns a server's most recent session records
func (s *service) ListSessionHistory(ctx context.Context, input *ListSessionHistoryInput) (*ListSessionHistoryOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.leaderboardSize
	}

	out, err := s.sessionRecordRepo.ListSessionRecords(ctx, &sessionRecordRepo.ListSessionRecordsInput{
		GuildID: input.GuildID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}

	return &ListSessionHistoryOutput{
		Records: out.Records,
	}, nil
}
