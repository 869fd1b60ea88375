package session_record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionRecordKeyPrefix = "session_record:"
	guildSessionsKeyPrefix = "guild_sessions:"

	// Records are kept for 90 days
	recordTTL = 90 * 24 * time.Hour
)

// ErrSessionRecordNotFound is returned when a record does not exist
var ErrSessionRecordNotFound = errors.New("session record not found")

// Config holds configuration for the Redis session record repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session record repository
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

func recordKey(recordID string) string {
	return sessionRecordKeyPrefix + recordID
}

func guildSessionsKey(guildID string) string {
	return guildSessionsKeyPrefix + guildID
}

// CreateSessionRecord stores a record for a session that just started
func (r *redisRepository) CreateSessionRecord(ctx context.Context, input *CreateSessionRecordInput) (*CreateSessionRecordOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.ID == "" || input.GuildID == "" || input.Code == "" {
		return nil, errors.New("record ID, guild ID and code are required")
	}

	record := &models.SessionRecord{
		ID:               input.ID,
		Code:             input.Code,
		GuildID:          input.GuildID,
		HostID:           input.HostID,
		VoiceChannelID:   input.VoiceChannelID,
		VoiceChannelName: input.VoiceChannelName,
		Duration:         input.Duration,
		PointsPerMinute:  input.PointsPerMinute,
		StartedAt:        input.StartedAt,
		Active:           true,
	}

	if err := r.save(ctx, record); err != nil {
		return nil, err
	}

	return &CreateSessionRecordOutput{
		Record: record,
	}, nil
}

// CompleteSessionRecord marks a record inactive and stores how the session ended
func (r *redisRepository) CompleteSessionRecord(ctx context.Context, input *CompleteSessionRecordInput) (*CompleteSessionRecordOutput, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	record, err := r.GetSessionRecord(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}

	record.Active = false
	record.Outcome = input.Outcome
	record.Duration = input.Duration
	record.MinutesStudied = input.MinutesStudied
	record.PointsAwarded = input.PointsAwarded
	record.MembersCredited = input.MembersCredited
	record.EndedAt = input.EndedAt

	if err := r.save(ctx, record); err != nil {
		return nil, err
	}

	return &CompleteSessionRecordOutput{
		Record: record,
	}, nil
}

// GetSessionRecord retrieves a record by ID
func (r *redisRepository) GetSessionRecord(ctx context.Context, recordID string) (*models.SessionRecord, error) {
	if recordID == "" {
		return nil, errors.New("record ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, recordKey(recordID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionRecordNotFound
		}
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}

	var record models.SessionRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}

	return &record, nil
}

// ListSessionRecords lists a server's records, newest first
func (r *redisRepository) ListSessionRecords(ctx context.Context, input *ListSessionRecordsInput) (*ListSessionRecordsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}
	if input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	recordIDs, err := r.client.ZRevRange(ctx, guildSessionsKey(input.GuildID), 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}

	records := make([]*models.SessionRecord, 0, len(recordIDs))
	if len(recordIDs) == 0 {
		return &ListSessionRecordsOutput{Records: records}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(recordIDs))
	for i, recordID := range recordIDs {
		cmds[i] = pipe.Get(ctx, recordKey(recordID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get session records: %w", err)
	}

	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record expired but its index entry remains
				continue
			}
			return nil, fmt.Errorf("failed to get session record %s: %w", recordIDs[i], err)
		}

		var record models.SessionRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session record %s: %w", recordIDs[i], err)
		}
		records = append(records, &record)
	}

	return &ListSessionRecordsOutput{
		Records: records,
	}, nil
}

func (r *redisRepository) save(ctx context.Context, record *models.SessionRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(record.ID), recordJSON, recordTTL)
	pipe.ZAdd(ctx, guildSessionsKey(record.GuildID), redis.Z{
		Score:  float64(record.StartedAt.UnixNano()),
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}

	return nil
}
