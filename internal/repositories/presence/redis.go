package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/studyhall/internal/common/uuid"
	"github.com/KirkDiggler/studyhall/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	presenceKeyPrefix        = "presence:"
	channelPresenceKeyPrefix = "channel_presence:"
)

// ErrPresenceNotFound is returned when a member has no open presence
var ErrPresenceNotFound = errors.New("presence not found")

// Config holds configuration for the Redis presence repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator names each presence row
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed presence repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

func presenceKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", presenceKeyPrefix, guildID, userID)
}

func channelPresenceKey(guildID, channelID string) string {
	return fmt.Sprintf("%s%s:%s", channelPresenceKeyPrefix, guildID, channelID)
}

// OpenPresence records a member joining a voice channel
func (r *redisRepository) OpenPresence(ctx context.Context, input *OpenPresenceInput) (*OpenPresenceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.UserID == "" || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("user ID, guild ID and channel ID are required")
	}

	existing, err := r.getPresence(ctx, input.GuildID, input.UserID)
	if err != nil && !errors.Is(err, ErrPresenceNotFound) {
		return nil, err
	}

	presence := &models.Presence{
		ID:        r.uuidGenerator.NewUUID(),
		UserID:    input.UserID,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		JoinTime:  input.JoinTime,
		Active:    true,
	}

	presenceJSON, err := json.Marshal(presence)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presence: %w", err)
	}

	pipe := r.client.TxPipeline()

	// A member can only be in one voice channel per server
	if existing != nil && existing.ChannelID != input.ChannelID {
		pipe.SRem(ctx, channelPresenceKey(input.GuildID, existing.ChannelID), input.UserID)
	}

	pipe.Set(ctx, presenceKey(input.GuildID, input.UserID), presenceJSON, 0)
	pipe.SAdd(ctx, channelPresenceKey(input.GuildID, input.ChannelID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to open presence: %w", err)
	}

	return &OpenPresenceOutput{
		Presence: presence,
		Replaced: existing != nil,
	}, nil
}

// ClosePresence ends a member's open presence
func (r *redisRepository) ClosePresence(ctx context.Context, input *ClosePresenceInput) (*ClosePresenceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.UserID == "" || input.GuildID == "" {
		return nil, errors.New("user ID and guild ID are required")
	}

	presence, err := r.getPresence(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, presenceKey(input.GuildID, input.UserID))
	pipe.SRem(ctx, channelPresenceKey(input.GuildID, presence.ChannelID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to close presence: %w", err)
	}

	presence.LeaveTime = input.LeaveTime
	presence.Active = false

	duration := input.LeaveTime.Sub(presence.JoinTime)
	if duration < 0 {
		duration = 0
	}

	return &ClosePresenceOutput{
		Presence: presence,
		Duration: duration,
	}, nil
}

// GetChannelPresences lists the open presences in a voice channel
func (r *redisRepository) GetChannelPresences(ctx context.Context, input *GetChannelPresencesInput) (*GetChannelPresencesOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("input, guild ID and channel ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, channelPresenceKey(input.GuildID, input.ChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user IDs for channel: %w", err)
	}

	if len(userIDs) == 0 {
		return &GetChannelPresencesOutput{
			Presences: []*models.Presence{},
		}, nil
	}

	pipe := r.client.Pipeline()
	presenceCommands := make(map[string]*redis.StringCmd)
	for _, userID := range userIDs {
		presenceCommands[userID] = pipe.Get(ctx, presenceKey(input.GuildID, userID))
	}

	// redis.Nil from a single GET surfaces here too; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get presences: %w", err)
	}

	presences := make([]*models.Presence, 0, len(userIDs))
	for userID, cmd := range presenceCommands {
		presenceJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Presence was closed between reading the set and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get presence for %s: %w", userID, err)
		}

		var presence models.Presence
		if err := json.Unmarshal([]byte(presenceJSON), &presence); err != nil {
			return nil, fmt.Errorf("failed to unmarshal presence for %s: %w", userID, err)
		}

		if presence.ChannelID != input.ChannelID {
			continue
		}
		presences = append(presences, &presence)
	}

	return &GetChannelPresencesOutput{
		Presences: presences,
	}, nil
}

func (r *redisRepository) getPresence(ctx context.Context, guildID, userID string) (*models.Presence, error) {
	presenceJSON, err := r.client.Get(ctx, presenceKey(guildID, userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPresenceNotFound
		}
		return nil, fmt.Errorf("failed to get presence: %w", err)
	}

	var presence models.Presence
	if err := json.Unmarshal([]byte(presenceJSON), &presence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presence: %w", err)
	}

	return &presence, nil
}
