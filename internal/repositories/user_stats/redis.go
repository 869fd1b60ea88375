package user_stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userStatsKeyPrefix   = "user_stats:"
	leaderboardKeyPrefix = "guild_leaderboard:"

	fieldPoints    = "points"
	fieldStudyTime = "total_study_time"
	fieldStreak    = "study_streak"
	fieldUpdatedAt = "updated_at"
)

// ErrUserStatsNotFound is returned when a member has never been credited
var ErrUserStatsNotFound = errors.New("user stats not found")

// Config holds configuration for the Redis user stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func userStatsKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", userStatsKeyPrefix, guildID, userID)
}

func leaderboardKey(guildID string) string {
	return leaderboardKeyPrefix + guildID
}

func validateMember(userID, guildID string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	if guildID == "" {
		return errors.New("guild ID cannot be empty")
	}
	return nil
}

// CreditUser adds points and study time and bumps the streak in one MULTI/EXEC,
// so concurrent credits for the same member serialize in Redis
func (r *redisRepository) CreditUser(ctx context.Context, input *CreditUserInput) (*CreditUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateMember(input.UserID, input.GuildID); err != nil {
		return nil, err
	}

	key := userStatsKey(input.GuildID, input.UserID)
	now := time.Now()

	var pointsCmd, studyTimeCmd, streakCmd *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pointsCmd = pipe.HIncrBy(ctx, key, fieldPoints, int64(input.Points))
		studyTimeCmd = pipe.HIncrBy(ctx, key, fieldStudyTime, int64(input.StudyTime))
		streakCmd = pipe.HIncrBy(ctx, key, fieldStreak, 1)
		pipe.HSet(ctx, key, fieldUpdatedAt, now.Unix())
		pipe.ZIncrBy(ctx, leaderboardKey(input.GuildID), float64(input.Points), input.UserID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit user %s: %w", input.UserID, err)
	}

	return &CreditUserOutput{
		Stats: &models.UserStats{
			UserID:         input.UserID,
			GuildID:        input.GuildID,
			Points:         int(pointsCmd.Val()),
			TotalStudyTime: int(studyTimeCmd.Val()),
			StudyStreak:    int(streakCmd.Val()),
			UpdatedAt:      time.Unix(now.Unix(), 0),
		},
	}, nil
}

// AwardPoints adds raw points to a member
func (r *redisRepository) AwardPoints(ctx context.Context, input *AwardPointsInput) (*AwardPointsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateMember(input.UserID, input.GuildID); err != nil {
		return nil, err
	}

	key := userStatsKey(input.GuildID, input.UserID)

	var pointsCmd *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pointsCmd = pipe.HIncrBy(ctx, key, fieldPoints, int64(input.Points))
		pipe.HSet(ctx, key, fieldUpdatedAt, time.Now().Unix())
		pipe.ZIncrBy(ctx, leaderboardKey(input.GuildID), float64(input.Points), input.UserID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to award points to user %s: %w", input.UserID, err)
	}

	return &AwardPointsOutput{
		Points: int(pointsCmd.Val()),
	}, nil
}

// GetUserStats retrieves a member's totals
func (r *redisRepository) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*models.UserStats, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateMember(input.UserID, input.GuildID); err != nil {
		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, userStatsKey(input.GuildID, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrUserStatsNotFound
	}

	return parseUserStats(input.UserID, input.GuildID, fields)
}

// GetTopUsers retrieves the highest scoring members of a server
func (r *redisRepository) GetTopUsers(ctx context.Context, input *GetTopUsersInput) (*GetTopUsersOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}
	if input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	ranked, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey(input.GuildID), 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(ranked) == 0 {
		return &GetTopUsersOutput{
			Stats: []*models.UserStats{},
		}, nil
	}

	// Fetch every member's hash in one round trip
	pipe := r.client.Pipeline()
	statsCommands := make([]*redis.MapStringStringCmd, len(ranked))
	for i, z := range ranked {
		userID, _ := z.Member.(string)
		statsCommands[i] = pipe.HGetAll(ctx, userStatsKey(input.GuildID, userID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	stats := make([]*models.UserStats, 0, len(ranked))
	for i, z := range ranked {
		userID, _ := z.Member.(string)
		fields := statsCommands[i].Val()
		if len(fields) == 0 {
			// Hash was removed after the leaderboard was read
			continue
		}

		userStats, err := parseUserStats(userID, input.GuildID, fields)
		if err != nil {
			return nil, err
		}
		stats = append(stats, userStats)
	}

	return &GetTopUsersOutput{
		Stats: stats,
	}, nil
}

// GetUserRank returns a member's 1-based rank
func (r *redisRepository) GetUserRank(ctx context.Context, input *GetUserRankInput) (*GetUserRankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateMember(input.UserID, input.GuildID); err != nil {
		return nil, err
	}

	key := leaderboardKey(input.GuildID)
	score, err := r.client.ZScore(ctx, key, input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserStatsNotFound
		}
		return nil, fmt.Errorf("failed to get user score: %w", err)
	}

	// Everyone strictly ahead pushes the rank down; equal scores share it
	ahead, err := r.client.ZCount(ctx, key, "("+strconv.FormatFloat(score, 'f', -1, 64), "+inf").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count higher scores: %w", err)
	}

	return &GetUserRankOutput{
		Rank: int(ahead) + 1,
	}, nil
}

func parseUserStats(userID, guildID string, fields map[string]string) (*models.UserStats, error) {
	stats := &models.UserStats{
		UserID:  userID,
		GuildID: guildID,
	}

	var err error
	if stats.Points, err = parseIntField(fields, fieldPoints); err != nil {
		return nil, err
	}
	if stats.TotalStudyTime, err = parseIntField(fields, fieldStudyTime); err != nil {
		return nil, err
	}
	if stats.StudyStreak, err = parseIntField(fields, fieldStreak); err != nil {
		return nil, err
	}

	updatedAt, err := parseIntField(fields, fieldUpdatedAt)
	if err != nil {
		return nil, err
	}
	if updatedAt > 0 {
		stats.UpdatedAt = time.Unix(int64(updatedAt), 0)
	}

	return stats, nil
}

func parseIntField(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return value, nil
}
